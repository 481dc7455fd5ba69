package logic

// RequirePositive rejects values of zero or less with an INVALID_ARGUMENT
// error carrying message.
func RequirePositive[T ~int | ~int32 | ~int64](value T, message string) error {
	if value <= 0 {
		return NewInvalidArgument(message)
	}
	return nil
}

// RequireNotEmpty rejects an empty string with an INVALID_ARGUMENT error
// carrying message.
func RequireNotEmpty(value string, message string) error {
	if value == "" {
		return NewInvalidArgument(message)
	}
	return nil
}

// RequireAtMost rejects values above limit with an INVALID_ARGUMENT error
// carrying message.
func RequireAtMost[T ~int | ~int32 | ~int64](value, limit T, message string) error {
	if value > limit {
		return NewInvalidArgument(message)
	}
	return nil
}
