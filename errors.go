package stringhashtable

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Makes errors.Is match any NoRecordFound regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// InvalidArgument - Custom error to inform that a key (or the table itself) can not be used in an operation
type InvalidArgument struct {
	msg string
}

// Error - Used to notify an invalid argument
func (E InvalidArgument) Error() string {
	if E.msg == "" {
		return "invalid argument"
	}
	return E.msg
}

// Is - Makes errors.Is match any InvalidArgument regardless of message
func (E InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}

// ConstructionError - Custom error to inform that a table could not be created
type ConstructionError struct {
	msg string
}

// Error - Used to notify that a table could not be created
func (E ConstructionError) Error() string {
	if E.msg == "" {
		return "could not construct hash table"
	}
	return E.msg
}

// Is - Makes errors.Is match any ConstructionError regardless of message
func (E ConstructionError) Is(target error) bool {
	_, ok := target.(ConstructionError)
	return ok
}
