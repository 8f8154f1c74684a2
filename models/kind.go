package models

// Kind 收支类型，类别与交易共用
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid 是否为已知的收支类型
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Label 导出报表时使用的本地化名称
func (k Kind) Label() string {
	if k == KindIncome {
		return "Receita"
	}
	return "Despesa"
}
