package port

// CodeGeneratorPort produces access codes for new accounts.
type CodeGeneratorPort interface {
	Generate() (string, error)
}
