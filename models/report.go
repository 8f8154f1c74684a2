package models

// MonthlyReport 月度收支汇总，Month 从 0 开始（0 = 一月）
type MonthlyReport struct {
	Month        int           `json:"month"`
	Year         int           `json:"year"`
	Income       float64       `json:"income"`
	Expenses     float64       `json:"expenses"`
	Balance      float64       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}
