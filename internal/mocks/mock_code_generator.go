package mocks

// MockCodeGenerator implements port.CodeGeneratorPort for testing
type MockCodeGenerator struct {
	GenerateFunc func() (string, error)
}

// NewMockCodeGenerator creates a new MockCodeGenerator with default behaviors
func NewMockCodeGenerator() *MockCodeGenerator {
	return &MockCodeGenerator{}
}

func (m *MockCodeGenerator) Generate() (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	// Default behavior: fixed code
	return "123456", nil
}
