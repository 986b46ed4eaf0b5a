package service

// Validator checks a request struct against its declared constraints and
// returns a validation AppError listing each offending field.
type Validator interface {
	Struct(s any) error
}
