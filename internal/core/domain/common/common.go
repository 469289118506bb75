package common

import (
	"fmt"
	"strings"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

type Email string

// EmailNormalizer applies the configured uniqueness policy to raw addresses.
type EmailNormalizer func(rawEmail string) Email

func NewEmailNormalizer(lowercase bool) EmailNormalizer {
	return func(rawEmail string) Email {
		if lowercase {
			return Email(strings.ToLower(rawEmail))
		}
		return Email(rawEmail)
	}
}
