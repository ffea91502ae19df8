package errs_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("should format without a cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipmentId", "TRK-2026-0001")

		assert.Equal(t, "object not found: TRK-2026-0001", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should include param and cause when wrapped", func(t *testing.T) {
		cause := errors.New("row scan failed")
		err := errs.NewObjectNotFoundErrorWithCause("customerId", "42", cause)

		assert.Equal(t,
			"object not found: param is: customerId, ID is: 42 (cause: row scan failed)",
			err.Error())
		assert.Equal(t, cause, err.Cause)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("should format the param name", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("contactPhone")

		assert.Equal(t, "value is invalid: contactPhone", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should append the cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("email", errors.New("missing @"))

		assert.Equal(t, "value is invalid: email (cause: missing @)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("should format the param name", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("trackingNumber")

		assert.Equal(t, "value is required: trackingNumber", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("should carry value and bounds under its own sentinel", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("weightKg", 150.0, 0.0, 100.0)

		assert.Equal(t,
			"value is out of range: 150 is weightKg, min value is 0, max value is 100",
			err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.NotErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should collapse newlines in the message", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("description", "first\nsecond", 3, 200)

		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestBusinessRuleError(t *testing.T) {
	t.Run("should surface the rule verbatim", func(t *testing.T) {
		err := errs.NewBusinessRuleError("customer already has 3 active shipments")

		assert.Equal(t, "business rule violated: customer already has 3 active shipments", err.Error())
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	})

	t.Run("should support formatted rules", func(t *testing.T) {
		err := errs.NewBusinessRuleErrorf("warehouse %s has no free capacity", "WH-LPZ-1")

		assert.Equal(t, "business rule violated: warehouse WH-LPZ-1 has no free capacity", err.Error())
	})

	t.Run("should append the cause", func(t *testing.T) {
		err := errs.NewBusinessRuleErrorWithCause("plate number already registered", errors.New("duplicate key"))

		assert.Equal(t, "business rule violated: plate number already registered (cause: duplicate key)", err.Error())
	})
}

func TestSentinelClassification(t *testing.T) {
	t.Run("should unwrap each error type to exactly one sentinel", func(t *testing.T) {
		cases := []struct {
			err      error
			sentinel error
		}{
			{errs.NewObjectNotFoundError("routeId", "7"), errs.ErrObjectNotFound},
			{errs.NewValueIsInvalidError("department"), errs.ErrValueIsInvalid},
			{errs.NewValueIsRequiredError("street"), errs.ErrValueIsRequired},
			{errs.NewValueIsOutOfRangeError("year", 1800, 1900, 2027), errs.ErrValueIsOutOfRange},
			{errs.NewBusinessRuleError("route already exists"), errs.ErrBusinessRuleViolated},
		}

		sentinels := []error{
			errs.ErrObjectNotFound,
			errs.ErrValueIsInvalid,
			errs.ErrValueIsRequired,
			errs.ErrValueIsOutOfRange,
			errs.ErrBusinessRuleViolated,
		}

		for _, tc := range cases {
			for _, sentinel := range sentinels {
				if errors.Is(tc.sentinel, sentinel) {
					require.ErrorIs(t, tc.err, sentinel)
				} else {
					require.NotErrorIs(t, tc.err, sentinel)
				}
			}
		}
	})
}
