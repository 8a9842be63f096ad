package game

import "fmt"

// Classify maps a verdict code to the keyboard status it implies.
func Classify(code VerdictCode) (LetterStatus, error) {
	switch code {
	case VerdictCorrect:
		return StatusGreen, nil
	case VerdictPresent:
		return StatusYellow, nil
	case VerdictAbsent:
		return StatusRed, nil
	}
	return StatusDefault, fmt.Errorf("%w: %d", ErrInvalidMaskCode, code)
}

// Priority ranks statuses for monotonic upgrades: green > yellow > red > default.
// Unknown statuses rank as default.
func (s LetterStatus) Priority() int {
	switch s {
	case StatusGreen:
		return 3
	case StatusYellow:
		return 2
	case StatusRed:
		return 1
	}
	return 0
}

// validateMask checks length and every code of a service mask.
func validateMask(mask []VerdictCode) error {
	if len(mask) != WordLen {
		return fmt.Errorf("%w: mask length %d", ErrInvalidMaskCode, len(mask))
	}
	for _, c := range mask {
		if _, err := Classify(c); err != nil {
			return err
		}
	}
	return nil
}

// AllCorrect reports whether every code in the mask is VerdictCorrect.
func AllCorrect(mask []VerdictCode) bool {
	if len(mask) == 0 {
		return false
	}
	for _, c := range mask {
		if c != VerdictCorrect {
			return false
		}
	}
	return true
}
