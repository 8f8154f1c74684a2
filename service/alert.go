package service

import "fintrack/models"

// AlertLevel 预算提醒级别
type AlertLevel string

const (
	AlertWarning  AlertLevel = "warning"
	AlertCaution  AlertLevel = "caution"
	AlertPositive AlertLevel = "positive"
)

// BudgetAlert 预算提醒
type BudgetAlert struct {
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
}

// cautionRatio 支出超过收入该比例时提醒
const cautionRatio = 0.8

// EvaluateBudget 按优先级选出至多一条提醒，无匹配返回 nil
func EvaluateBudget(r models.MonthlyReport) *BudgetAlert {
	switch {
	case r.Expenses > r.Income:
		return &BudgetAlert{Level: AlertWarning, Message: "Atenção: Suas despesas estão maiores que suas receitas este mês!"}
	case r.Expenses > r.Income*cautionRatio:
		return &BudgetAlert{Level: AlertCaution, Message: "Cuidado: Você já gastou mais de 80% da sua renda mensal."}
	case r.Balance > 0:
		return &BudgetAlert{Level: AlertPositive, Message: "Parabéns! Você está conseguindo economizar este mês."}
	}
	return nil
}
