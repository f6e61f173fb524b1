package solana

import "fmt"

// CustomError is the numerical error returned by a program.
type CustomError uint32

func (c CustomError) Error() string {
	return fmt.Sprintf("custom program error: %d", uint32(c))
}
