package service

import (
	"context"

	"fintrack/models"
)

// MonthlyReport 汇总当前用户某月收支，month 从 0 开始
// 未登录时返回 nil 与 ErrNotAuthenticated，以区别于全零报表
func (s *TransactionService) MonthlyReport(ctx context.Context, month, year int) (*models.MonthlyReport, error) {
	if _, err := requireUser(ctx, s.store); err != nil {
		return nil, err
	}
	if month < 0 || month > 11 {
		return nil, invalidInput("Mês inválido")
	}

	all, err := s.List(ctx, "")
	if err != nil {
		return nil, err
	}
	report := Aggregate(all, month, year)
	return &report, nil
}

// Aggregate 过滤出指定月份的交易并计算收入、支出与结余
func Aggregate(transactions []models.Transaction, month, year int) models.MonthlyReport {
	report := models.MonthlyReport{
		Month:        month,
		Year:         year,
		Transactions: make([]models.Transaction, 0),
	}
	for _, t := range transactions {
		if int(t.Date.Month())-1 != month || t.Date.Year() != year {
			continue
		}
		report.Transactions = append(report.Transactions, t)
		switch t.Type {
		case models.KindIncome:
			report.Income += t.Amount
		case models.KindExpense:
			report.Expenses += t.Amount
		}
	}
	report.Balance = report.Income - report.Expenses
	return report
}
