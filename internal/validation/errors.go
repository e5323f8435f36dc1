package validation

import "errors"

// Field names a form input.
type Field string

const (
	FieldRequired        Field = "required"
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldBirthDate       Field = "birthDate"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// Messages shown to the user, one per failed rule.
const (
	MsgRequiredFields   = "Por favor, preencha todos os campos obrigatórios!"
	MsgLoginRequired    = "Por favor, preencha todos os campos!"
	MsgFullName         = "Por favor, insira seu nome completo (nome e sobrenome)!"
	MsgEmail            = "Por favor, insira um email válido!"
	MsgPhone            = "Por favor, insira um telefone válido com pelo menos 10 dígitos!"
	MsgBirthDate        = "Por favor, insira uma data de nascimento válida! Você deve ter entre 10 e 120 anos."
	MsgPasswordMismatch = "As senhas não coincidem!"
	MsgPasswordLength   = "A senha deve ter pelo menos 6 caracteres!"
)

// Error is a failed validation rule. Message is safe to show verbatim.
type Error struct {
	Field   Field
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(field Field, msg string) error {
	return &Error{Field: field, Message: msg}
}

// AsError unwraps a validation failure from err.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
