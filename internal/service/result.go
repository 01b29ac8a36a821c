package service

// Result is the uniform envelope every service operation returns.
// Expected business failures (not found, bad category, bad
// credentials) come back as a failure Result, never as a Go error;
// errors are reserved for unexpected repository or signing trouble.
type Result[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func OK[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Message: message, Data: data}
}

func Fail[T any](message string) Result[T] {
	var zero T
	return Result[T]{Success: false, Message: message, Data: zero}
}
