package service

import (
	"fmt"
	"html"
	"strconv"

	"fintrack/config"
	"fintrack/models"

	"gopkg.in/gomail.v2"
)

// ErrEmailDisabled 未开启邮件服务
var ErrEmailDisabled = &Error{Code: CodeUnavailable, Message: "Serviço de email desativado"}

// EmailService 邮件服务
type EmailService struct {
	cfg  *config.EmailConfig
	send func(m *gomail.Message) error
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	s := &EmailService{cfg: cfg}
	s.send = s.dialAndSend
	return s
}

// SendMonthlyReport 把月度汇总与预算提醒发送给当前用户
func (s *EmailService) SendMonthlyReport(user *models.User, report models.MonthlyReport) error {
	if !s.cfg.Enabled {
		return ErrEmailDisabled
	}

	subject := fmt.Sprintf("Seu relatório de %s/%d", monthNames[report.Month], report.Year)
	body := s.generateMonthlyReportBody(user.Name, report, EvaluateBudget(report))

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.send(m); err != nil {
		return internal("发送月度报表邮件", err)
	}
	return nil
}

func (s *EmailService) dialAndSend(m *gomail.Message) error {
	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}

func formatMoney(v float64) string {
	return "R$ " + strconv.FormatFloat(v, 'f', 2, 64)
}

// generateMonthlyReportBody 生成月度报表邮件内容
func (s *EmailService) generateMonthlyReportBody(name string, report models.MonthlyReport, alert *BudgetAlert) string {
	alertBlock := ""
	if alert != nil {
		color := "#856404"
		if alert.Level == AlertPositive {
			color = "#166534"
		}
		alertBlock = fmt.Sprintf(`<div class="alert" style="color: %s;"><p>%s</p></div>`, color, html.EscapeString(alert.Message))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; }
        .header { background: linear-gradient(135deg, #10b981, #059669); color: white; padding: 30px; text-align: center; }
        .content { padding: 30px; }
        table { width: 100%%; border-collapse: collapse; }
        td { padding: 10px; border-bottom: 1px solid #eee; }
        .alert { background: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0; border-radius: 4px; }
        .footer { background: #f8f9fa; padding: 20px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>Relatório de %s/%d</h1></div>
        <div class="content">
            <p>Olá, <strong>%s</strong>!</p>
            <table>
                <tr><td>Receitas</td><td>%s</td></tr>
                <tr><td>Despesas</td><td>%s</td></tr>
                <tr><td>Saldo</td><td>%s</td></tr>
                <tr><td>Transações</td><td>%d</td></tr>
            </table>
            %s
        </div>
        <div class="footer"><p>Este email foi enviado automaticamente, não responda.</p></div>
    </div>
</body>
</html>
`, monthNames[report.Month], report.Year, html.EscapeString(name),
		formatMoney(report.Income), formatMoney(report.Expenses), formatMoney(report.Balance),
		len(report.Transactions), alertBlock)
}
