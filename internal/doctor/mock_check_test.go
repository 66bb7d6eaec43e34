package doctor

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// mockCheck is a testify mock of Check.
type mockCheck struct {
	mock.Mock
}

func (m *mockCheck) Name() string     { return m.Called().String(0) }
func (m *mockCheck) Category() string { return m.Called().String(0) }

func (m *mockCheck) Run(ctx context.Context) *CheckResult {
	r, _ := m.Called(ctx).Get(0).(*CheckResult)
	return r
}

func newMockCheck(name string, status Severity) *mockCheck {
	c := &mockCheck{}
	c.On("Name").Return(name).Maybe()
	c.On("Category").Return("test").Maybe()
	c.On("Run", mock.Anything).Return(&CheckResult{Status: status, Message: name})
	return c
}
