package dom

import (
	"fmt"
	"strings"
)

// validateToken checks a token the way DOMTokenList methods do: empty tokens
// are a SyntaxError, tokens with ASCII whitespace an InvalidCharacterError.
func validateToken(token string) error {
	if token == "" {
		return ErrSyntax("The token provided must not be empty.")
	}
	if strings.ContainsAny(token, " \t\n\r\f") {
		return ErrInvalidCharacter(fmt.Sprintf("The token provided ('%s') contains HTML space characters, which are not valid in tokens.", token))
	}
	return nil
}

// DOMTokenList represents a set of space-separated tokens backed by an
// attribute. It is used for Element.classList.
type DOMTokenList struct {
	element  *Element
	attrName string
}

func newDOMTokenList(element *Element, attrName string) *DOMTokenList {
	return &DOMTokenList{
		element:  element,
		attrName: attrName,
	}
}

// tokens returns the current tokens, deduplicated, in order.
func (dtl *DOMTokenList) tokens() []string {
	value := dtl.element.GetAttribute(dtl.attrName)
	if value == "" {
		return nil
	}
	allTokens := strings.Fields(value)
	seen := make(map[string]bool, len(allTokens))
	result := make([]string, 0, len(allTokens))
	for _, token := range allTokens {
		if !seen[token] {
			seen[token] = true
			result = append(result, token)
		}
	}
	return result
}

// setTokens writes tokens back to the attribute. An absent attribute is only
// created when there is something to write.
func (dtl *DOMTokenList) setTokens(tokens []string) {
	if len(tokens) > 0 {
		dtl.element.SetAttribute(dtl.attrName, strings.Join(tokens, " "))
		return
	}
	if dtl.element.HasAttribute(dtl.attrName) {
		dtl.element.SetAttribute(dtl.attrName, "")
	}
}

// Length returns the number of tokens.
func (dtl *DOMTokenList) Length() int {
	return len(dtl.tokens())
}

// Item returns the token at the given index, or empty string if out of bounds.
func (dtl *DOMTokenList) Item(index int) string {
	tokens := dtl.tokens()
	if index < 0 || index >= len(tokens) {
		return ""
	}
	return tokens[index]
}

// Contains reports whether token is in the list. Invalid tokens are never
// contained.
func (dtl *DOMTokenList) Contains(token string) bool {
	if validateToken(token) != nil {
		return false
	}
	for _, t := range dtl.tokens() {
		if t == token {
			return true
		}
	}
	return false
}

// Add adds token if it is not already present.
func (dtl *DOMTokenList) Add(token string) error {
	if err := validateToken(token); err != nil {
		return err
	}
	current := dtl.tokens()
	for _, t := range current {
		if t == token {
			return nil
		}
	}
	dtl.setTokens(append(current, token))
	return nil
}

// Remove removes every occurrence of token.
func (dtl *DOMTokenList) Remove(token string) error {
	if err := validateToken(token); err != nil {
		return err
	}
	current := dtl.tokens()
	result := current[:0]
	for _, t := range current {
		if t != token {
			result = append(result, t)
		}
	}
	dtl.setTokens(result)
	return nil
}

// Toggle adds token when absent and removes it when present. It returns
// whether the token is present afterwards.
func (dtl *DOMTokenList) Toggle(token string) (bool, error) {
	if err := validateToken(token); err != nil {
		return false, err
	}
	if dtl.Contains(token) {
		return false, dtl.Remove(token)
	}
	return true, dtl.Add(token)
}

// Value returns the underlying attribute value.
func (dtl *DOMTokenList) Value() string {
	return dtl.element.GetAttribute(dtl.attrName)
}

// Values returns the tokens in order.
func (dtl *DOMTokenList) Values() []string {
	return dtl.tokens()
}

func (dtl *DOMTokenList) String() string {
	return dtl.Value()
}
