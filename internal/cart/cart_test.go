package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrc-store/storefront/internal/domain"
)

func rakhi(id string, price int64) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  "Rakhi " + id,
		Price: decimal.NewFromInt(price),
	}
}

func TestCart_Add(t *testing.T) {
	t.Run("first add creates a line with quantity 1", func(t *testing.T) {
		c, event := New().Add(rakhi("p1", 100), domain.UnitSingle)

		require.Equal(t, 1, c.Len())
		line, ok := c.Line("p1", domain.UnitSingle)
		require.True(t, ok)
		assert.Equal(t, 1, line.Quantity)
		assert.True(t, line.UnitPrice.Equal(decimal.NewFromInt(100)))

		assert.Equal(t, "p1", event.ProductID)
		assert.Equal(t, "Rakhi p1", event.Name)
		assert.Equal(t, 1, event.Quantity)
	})

	t.Run("second add increments the existing line", func(t *testing.T) {
		p := rakhi("p1", 100)
		c, _ := New().Add(p, domain.UnitSingle)
		c, event := c.Add(p, domain.UnitSingle)

		require.Equal(t, 1, c.Len())
		line, _ := c.Line("p1", domain.UnitSingle)
		assert.Equal(t, 2, line.Quantity)
		assert.True(t, line.UnitPrice.Equal(p.Price))
		assert.Equal(t, 2, event.Quantity)
	})

	t.Run("dozen unit price is twelve times the product price", func(t *testing.T) {
		c, event := New().Add(rakhi("p1", 40), domain.UnitDozen)

		line, ok := c.Line("p1", domain.UnitDozen)
		require.True(t, ok)
		assert.True(t, line.UnitPrice.Equal(decimal.NewFromInt(480)))
		assert.Equal(t, "Rakhi p1 (1 Dozen)", event.Name)
	})

	t.Run("single and dozen are distinct lines", func(t *testing.T) {
		p := rakhi("p1", 40)
		c, _ := New().Add(p, domain.UnitSingle)
		c, _ = c.Add(p, domain.UnitDozen)

		assert.Equal(t, 2, c.Len())
	})

	t.Run("price snapshot survives a later catalog price change", func(t *testing.T) {
		p := rakhi("p1", 100)
		c, _ := New().Add(p, domain.UnitSingle)

		p.Price = decimal.NewFromInt(150)
		c, _ = c.Add(p, domain.UnitSingle)

		line, _ := c.Line("p1", domain.UnitSingle)
		assert.Equal(t, 2, line.Quantity)
		assert.True(t, line.UnitPrice.Equal(decimal.NewFromInt(100)),
			"unit price must stay at the add-time snapshot")
	})

	t.Run("lines keep insertion order", func(t *testing.T) {
		c, _ := New().Add(rakhi("p1", 10), domain.UnitSingle)
		c, _ = c.Add(rakhi("p2", 20), domain.UnitSingle)
		c, _ = c.Add(rakhi("p3", 30), domain.UnitSingle)
		c, _ = c.Add(rakhi("p2", 20), domain.UnitSingle)

		lines := c.Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, "p1", lines[0].ProductID)
		assert.Equal(t, "p2", lines[1].ProductID)
		assert.Equal(t, "p3", lines[2].ProductID)
	})

	t.Run("add does not mutate the previous snapshot", func(t *testing.T) {
		base, _ := New().Add(rakhi("p1", 100), domain.UnitSingle)
		next, _ := base.Add(rakhi("p1", 100), domain.UnitSingle)

		baseLine, _ := base.Line("p1", domain.UnitSingle)
		nextLine, _ := next.Line("p1", domain.UnitSingle)
		assert.Equal(t, 1, baseLine.Quantity)
		assert.Equal(t, 2, nextLine.Quantity)
	})
}

func TestCart_Adjust(t *testing.T) {
	t.Run("positive delta increments", func(t *testing.T) {
		c, _ := New().Add(rakhi("p1", 100), domain.UnitSingle)
		c = c.Adjust("p1", domain.UnitSingle, 2)

		line, _ := c.Line("p1", domain.UnitSingle)
		assert.Equal(t, 3, line.Quantity)
	})

	t.Run("negative delta decrements without touching the snapshot", func(t *testing.T) {
		c, _ := New().Add(rakhi("p1", 100), domain.UnitSingle)
		c = c.Adjust("p1", domain.UnitSingle, 2)
		c = c.Adjust("p1", domain.UnitSingle, -1)

		line, _ := c.Line("p1", domain.UnitSingle)
		assert.Equal(t, 2, line.Quantity)
		assert.True(t, line.UnitPrice.Equal(decimal.NewFromInt(100)))
	})

	t.Run("reaching zero removes the line entirely", func(t *testing.T) {
		c, _ := New().Add(rakhi("p1", 100), domain.UnitSingle)
		c = c.Adjust("p1", domain.UnitSingle, -1)

		assert.Equal(t, 0, c.Len())
		_, ok := c.Line("p1", domain.UnitSingle)
		assert.False(t, ok)
	})

	t.Run("large negative delta clamps at zero and removes", func(t *testing.T) {
		c, _ := New().Add(rakhi("p1", 100), domain.UnitSingle)
		c = c.Adjust("p1", domain.UnitSingle, 1)
		c = c.Adjust("p1", domain.UnitSingle, -10)

		assert.Equal(t, 0, c.Len())
	})

	t.Run("absent key is a no-op", func(t *testing.T) {
		c, _ := New().Add(rakhi("p1", 100), domain.UnitSingle)
		got := c.Adjust("missing", domain.UnitSingle, -1)

		assert.Equal(t, c.Lines(), got.Lines())
	})

	t.Run("absent unit type is a no-op", func(t *testing.T) {
		c, _ := New().Add(rakhi("p1", 100), domain.UnitSingle)
		got := c.Adjust("p1", domain.UnitDozen, -1)

		assert.Equal(t, 1, got.Len())
		line, ok := got.Line("p1", domain.UnitSingle)
		require.True(t, ok)
		assert.Equal(t, 1, line.Quantity)
	})

	t.Run("removing a middle line keeps order and key lookups intact", func(t *testing.T) {
		c, _ := New().Add(rakhi("p1", 10), domain.UnitSingle)
		c, _ = c.Add(rakhi("p2", 20), domain.UnitSingle)
		c, _ = c.Add(rakhi("p3", 30), domain.UnitSingle)
		c = c.Adjust("p2", domain.UnitSingle, -1)

		lines := c.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "p1", lines[0].ProductID)
		assert.Equal(t, "p3", lines[1].ProductID)

		// p3's index shifted down; adjusting it must still find it.
		c = c.Adjust("p3", domain.UnitSingle, 1)
		line, ok := c.Line("p3", domain.UnitSingle)
		require.True(t, ok)
		assert.Equal(t, 2, line.Quantity)
	})

	t.Run("no sequence of operations leaves a non-positive quantity", func(t *testing.T) {
		c := New()
		p := rakhi("p1", 100)
		deltas := []int{-3, 1, -1, 5, -2, -9, 2}

		c, _ = c.Add(p, domain.UnitSingle)
		for _, d := range deltas {
			c = c.Adjust("p1", domain.UnitSingle, d)
			for _, line := range c.Lines() {
				assert.GreaterOrEqual(t, line.Quantity, 1)
			}
		}
	})
}

func TestCart_Units(t *testing.T) {
	c, _ := New().Add(rakhi("p1", 10), domain.UnitSingle)
	c, _ = c.Add(rakhi("p1", 10), domain.UnitSingle)
	c, _ = c.Add(rakhi("p2", 20), domain.UnitDozen)

	assert.Equal(t, 3, c.Units())
	assert.Equal(t, 2, c.Len())
}
