package getprice

import "fmt"

// UnrecognizedAssetError is returned when a symbol does not resolve to any
// supported asset.
type UnrecognizedAssetError struct {
	Input string
}

func (e *UnrecognizedAssetError) Error() string {
	return fmt.Sprintf("unrecognized asset: %q", e.Input)
}

// UnsupportedCurrencyError is returned for currency codes that cannot be priced.
type UnsupportedCurrencyError struct {
	Code string
}

func (e *UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("unsupported currency: %q", e.Code)
}

// MissingFieldError reports a JSON path absent from a provider response.
type MissingFieldError struct {
	Path string
	Err  error
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %s in response", e.Path)
}

func (e *MissingFieldError) Unwrap() error { return e.Err }

// NonNumericFieldError reports a field that exists but does not hold a number.
type NonNumericFieldError struct {
	Path  string
	Value any
}

func (e *NonNumericFieldError) Error() string {
	return fmt.Sprintf("field %s is not numeric: %v", e.Path, e.Value)
}

// TransportError wraps network failures and unexpected HTTP statuses.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cannot http GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError is returned when a response body is not valid JSON.
type MalformedResponseError struct {
	URL string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.URL, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// InputLengthMismatchError is returned when assets and amounts cannot be zipped.
type InputLengthMismatchError struct {
	Expected int // number of assets
	Got      int // number of amounts
}

func (e *InputLengthMismatchError) Error() string {
	return fmt.Sprintf("expected %d amounts, got %d", e.Expected, e.Got)
}

// ValueOverflowError is returned when a holding value does not fit a float64.
type ValueOverflowError struct {
	Asset  string
	Amount float64
}

func (e *ValueOverflowError) Error() string {
	return fmt.Sprintf("value of %g %s overflows", e.Amount, e.Asset)
}
