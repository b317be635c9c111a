package order

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldezl/ferreteria-api/internal/domain/enum"
	"github.com/mvaldezl/ferreteria-api/pkg/money"
)

func TestComposer_AddLine(t *testing.T) {
	c := NewComposer()

	idA := uuid.New()
	idB := uuid.New()

	err := c.AddLine(idA, "Martillo", 1050)
	require.NoError(t, err)
	err = c.AddLine(idB, "Destornillador", 550)
	require.NoError(t, err)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Martillo", lines[0].Name)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, int64(1050), lines[0].Subtotal)
	assert.Equal(t, "Destornillador", lines[1].Name)
}

func TestComposer_AddLine_Duplicate(t *testing.T) {
	c := NewComposer()
	id := uuid.New()

	require.NoError(t, c.AddLine(id, "Taladro", 9999))

	err := c.AddLine(id, "Taladro", 9999)
	assert.ErrorIs(t, err, ErrDuplicateLine)
	assert.Len(t, c.Lines(), 1)
	assert.Equal(t, int64(9999), c.Total())
}

func TestComposer_SetQuantity(t *testing.T) {
	c := NewComposer()
	require.NoError(t, c.AddLine(uuid.New(), "Clavos", 250))

	err := c.SetQuantity(0, 4)
	require.NoError(t, err)

	lines := c.Lines()
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, int64(1000), lines[0].Subtotal)
	assert.Equal(t, int64(1000), c.Total())
}

func TestComposer_SetQuantity_Invalid(t *testing.T) {
	c := NewComposer()
	require.NoError(t, c.AddLine(uuid.New(), "Tornillos", 150))
	require.NoError(t, c.SetQuantity(0, 5))

	tests := []struct {
		name     string
		quantity int
	}{
		{name: "zero", quantity: 0},
		{name: "negative", quantity: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.SetQuantity(0, tt.quantity)
			assert.ErrorIs(t, err, ErrInvalidQuantity)

			// prior quantity and subtotal must survive the rejection
			lines := c.Lines()
			assert.Equal(t, 5, lines[0].Quantity)
			assert.Equal(t, int64(750), lines[0].Subtotal)
		})
	}
}

func TestComposer_SetQuantity_IndexOutOfRange(t *testing.T) {
	c := NewComposer()

	assert.ErrorIs(t, c.SetQuantity(0, 1), ErrLineNotFound)
	assert.ErrorIs(t, c.SetQuantity(-1, 1), ErrLineNotFound)
}

func TestComposer_RemoveLine(t *testing.T) {
	c := NewComposer()
	require.NoError(t, c.AddLine(uuid.New(), "A", 100))
	require.NoError(t, c.AddLine(uuid.New(), "B", 200))
	require.NoError(t, c.AddLine(uuid.New(), "C", 300))

	require.NoError(t, c.RemoveLine(1))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "A", lines[0].Name)
	assert.Equal(t, "C", lines[1].Name)
	assert.Equal(t, int64(400), c.Total())

	assert.ErrorIs(t, c.RemoveLine(2), ErrLineNotFound)
}

func TestComposer_Total_ExactAfterRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := NewComposer()

	for i := 0; i < 1000; i++ {
		switch n := len(c.Lines()); {
		case n == 0 || rng.Intn(3) == 0:
			price := money.FromDecimal(float64(rng.Intn(10000)) / 100)
			_ = c.AddLine(uuid.New(), "item", price)
		case rng.Intn(2) == 0:
			_ = c.SetQuantity(rng.Intn(n), rng.Intn(20)+1)
		default:
			_ = c.RemoveLine(rng.Intn(n))
		}

		// the invariant: total always equals the line-by-line sum
		var want int64
		for _, line := range c.Lines() {
			assert.Equal(t, int64(line.Quantity)*line.UnitPrice, line.Subtotal)
			want += line.Subtotal
		}
		require.Equal(t, want, c.Total())
	}
}

func TestComposer_Submit(t *testing.T) {
	c := NewComposer()
	customerID := uuid.New()
	now := time.Now()

	// worked example: A at 10.00 x3 plus B at 5.50 x1 totals 35.50
	require.NoError(t, c.AddLine(uuid.New(), "Producto A", 1000))
	require.NoError(t, c.AddLine(uuid.New(), "Producto B", 550))
	require.NoError(t, c.SetQuantity(0, 3))
	c.SetCounterpart(customerID, "Juan Perez")
	c.SetPaymentMethod(enum.PaymentMethodUSD)

	completed, err := c.Submit(now)
	require.NoError(t, err)
	require.NotNil(t, completed)

	assert.Equal(t, customerID, completed.CounterpartID)
	assert.Equal(t, "Juan Perez", completed.CounterpartName)
	assert.Equal(t, enum.PaymentMethodUSD, completed.PaymentMethod)
	assert.Equal(t, int64(3550), completed.Total)
	assert.Equal(t, 35.50, money.ToDecimal(completed.Total))
	assert.Equal(t, now, completed.CreatedAt)
	require.Len(t, completed.Lines, 2)
	assert.Equal(t, 3, completed.Lines[0].Quantity)

	// composer resets for reuse after a successful submit
	assert.Empty(t, c.Lines())
	assert.Equal(t, int64(0), c.Total())
	_, err = c.Submit(time.Now())
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestComposer_Submit_Empty(t *testing.T) {
	c := NewComposer()
	c.SetCounterpart(uuid.New(), "Ferreteria Central")

	completed, err := c.Submit(time.Now())
	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Nil(t, completed)
}

func TestComposer_Submit_MissingCounterpart(t *testing.T) {
	c := NewComposer()
	require.NoError(t, c.AddLine(uuid.New(), "Pintura", 2500))

	completed, err := c.Submit(time.Now())
	assert.ErrorIs(t, err, ErrMissingCounterpart)
	assert.Nil(t, completed)

	// failed submit keeps the working state so the caller can fix and retry
	assert.Len(t, c.Lines(), 1)
	c.SetCounterpart(uuid.New(), "Ferreteria Central")
	_, err = c.Submit(time.Now())
	assert.NoError(t, err)
}

func TestComposer_SubmittedOrderIsFrozen(t *testing.T) {
	c := NewComposer()
	require.NoError(t, c.AddLine(uuid.New(), "Cable", 300))
	c.SetCounterpart(uuid.New(), "Proveedor SA")

	completed, err := c.Submit(time.Now())
	require.NoError(t, err)

	// mutating the reset composer must not touch the completed record
	require.NoError(t, c.AddLine(uuid.New(), "Otro", 999))
	assert.Len(t, completed.Lines, 1)
	assert.Equal(t, int64(300), completed.Total)
}
