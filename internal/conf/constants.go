package conf

// MaxKeyLength - Max number of bytes in a key, longer keys are rejected
const MaxKeyLength int = 64

// MinTableSize - Smallest number of buckets a table can be created with
const MinTableSize int64 = 2

// MaxTableSize - Largest number of buckets a table can be created with (range of a 32-bit unsigned bucket index)
const MaxTableSize int64 = 1<<32 - 1

// NotExistText - Printed in place of a table that is nil or has been closed
const NotExistText string = "This hash table does not exist."
