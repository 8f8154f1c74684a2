package service

import (
	"errors"
	"log"
)

// ErrorCode 业务错误分类
type ErrorCode int

const (
	CodeInternal ErrorCode = iota
	CodeNotAuthenticated
	CodeDuplicateEmail
	CodeInvalidCredentials
	CodeNotFound
	CodeInvalidInput
	CodeUnavailable
)

// Error 可预期的业务失败，Message 直接展示给用户
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is 按错误码与消息比较，便于 errors.Is 匹配携带底层原因的实例
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Message == e.Message
}

const MsgInternal = "Erro interno do servidor"

var (
	ErrNotAuthenticated    = &Error{Code: CodeNotAuthenticated, Message: "Usuário não autenticado"}
	ErrDuplicateEmail      = &Error{Code: CodeDuplicateEmail, Message: "Email já cadastrado"}
	ErrInvalidCredentials  = &Error{Code: CodeInvalidCredentials, Message: "Credenciais inválidas"}
	ErrCategoryNotFound    = &Error{Code: CodeNotFound, Message: "Categoria não encontrada"}
	ErrTransactionNotFound = &Error{Code: CodeNotFound, Message: "Transação não encontrada"}
	ErrGoalNotFound        = &Error{Code: CodeNotFound, Message: "Meta não encontrada"}
	ErrInternal            = &Error{Code: CodeInternal, Message: MsgInternal}
)

// 成功提示
const (
	MsgUserCreated        = "Usuário criado com sucesso"
	MsgLoggedIn           = "Login realizado com sucesso"
	MsgLoggedOut          = "Logout realizado com sucesso"
	MsgCategoryCreated    = "Categoria criada com sucesso"
	MsgCategoryDeleted    = "Categoria excluída com sucesso"
	MsgTransactionCreated = "Transação criada com sucesso"
	MsgTransactionDeleted = "Transação excluída com sucesso"
	MsgGoalCreated        = "Meta criada com sucesso"
	MsgProgressUpdated    = "Progresso atualizado com sucesso"
	MsgReportSent         = "Relatório enviado por email"
)

// invalidInput 参数不合法
func invalidInput(message string) error {
	return &Error{Code: CodeInvalidInput, Message: message}
}

// internal 记录底层原因并转换为通用错误
func internal(op string, err error) error {
	log.Printf("%s 失败: %v", op, err)
	return &Error{Code: CodeInternal, Message: MsgInternal, Err: err}
}

// CodeOf 提取错误码，非业务错误一律视为内部错误
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
