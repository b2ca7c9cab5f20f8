package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Request is the body posted to the analysis endpoint.
type Request struct {
	Password string `json:"password"`
}

// Result is a validated analysis returned by the service.
type Result struct {
	Strength    string   `json:"strength"`     // One of the five strength labels (not enforced)
	EntropyBits float64  `json:"entropy_bits"` // Estimated entropy in bits
	Score       int      `json:"score"`        // Service score, nominally 0-5
	Feedback    []string `json:"feedback"`     // Remediation suggestions, never nil after decoding
}

// MaxScore is the top of the service's scoring scale.
const MaxScore = 5

// HasFeedback reports whether there are remediation suggestions to show.
func (r *Result) HasFeedback() bool {
	return r != nil && len(r.Feedback) > 0
}

// rawResult mirrors Result with pointer fields so missing keys can be told
// apart from zero values.
type rawResult struct {
	Strength    *string             `json:"strength"`
	EntropyBits *float64            `json:"entropy_bits"`
	Score       *json.Number        `json:"score"`
	Feedback    *[]*json.RawMessage `json:"feedback"`
}

// DecodeResult parses and validates a response body.
// Invalid JSON yields a parse error; JSON that does not match the result
// schema yields a validation error.
func DecodeResult(body []byte) (*Result, error) {
	var raw rawResult
	if err := json.Unmarshal(body, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, NewValidationError(fmt.Sprintf("field %q has wrong type %s", typeErr.Field, typeErr.Value))
		}
		return nil, NewParseError("failed to parse JSON response", err)
	}

	if raw.Strength == nil || *raw.Strength == "" {
		return nil, NewValidationError("missing strength")
	}

	if raw.EntropyBits == nil {
		return nil, NewValidationError("missing entropy_bits")
	}
	entropy := *raw.EntropyBits
	if math.IsNaN(entropy) || math.IsInf(entropy, 0) || entropy < 0 {
		return nil, NewValidationError(fmt.Sprintf("entropy_bits out of range: %v", entropy))
	}

	if raw.Score == nil {
		return nil, NewValidationError("missing score")
	}
	score, err := raw.Score.Int64()
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("score is not an integer: %s", raw.Score.String()))
	}

	feedback := []string{}
	if raw.Feedback != nil {
		for i, item := range *raw.Feedback {
			var s string
			if item == nil {
				return nil, NewValidationError(fmt.Sprintf("feedback[%d] is null", i))
			}
			if err := json.Unmarshal(*item, &s); err != nil {
				return nil, NewValidationError(fmt.Sprintf("feedback[%d] is not a string", i))
			}
			feedback = append(feedback, s)
		}
	}

	return &Result{
		Strength:    *raw.Strength,
		EntropyBits: entropy,
		Score:       int(score),
		Feedback:    feedback,
	}, nil
}

// Outcome is the result of one analysis attempt: exactly one of Result and
// Err is set.
type Outcome struct {
	Result *Result
	Err    error
}

// OK reports whether the attempt produced a result.
func (o Outcome) OK() bool {
	return o.Err == nil && o.Result != nil
}

// Succeeded wraps a result into an Outcome.
func Succeeded(r *Result) Outcome {
	return Outcome{Result: r}
}

// Failed wraps an error into an Outcome.
func Failed(err error) Outcome {
	return Outcome{Err: err}
}
