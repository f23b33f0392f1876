package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylehub/barber-api/internal/domain/pos"
	"github.com/stylehub/barber-api/internal/httperr"
)

func serviceLine(id uint, price float64) pos.CartItem {
	return pos.CartItem{
		ID:    id,
		Name:  "Corte",
		Type:  pos.ItemService,
		Price: decimal.NewFromFloat(price),
	}
}

func productLine(id uint, price float64) pos.CartItem {
	return pos.CartItem{
		ID:    id,
		Name:  "Cera",
		Type:  pos.ItemProduct,
		Price: decimal.NewFromFloat(price),
	}
}

func dynamicPromo(id uint, pct int64) pos.CartItem {
	return pos.CartItem{
		ID:                 id,
		Name:               "Descuento",
		Type:               pos.ItemPromotion,
		DiscountPercentage: decimal.NewFromInt(pct),
		IsDynamic:          true,
	}
}

func TestCartMerging(t *testing.T) {
	t.Parallel()

	t.Run("same service merges into one line", func(t *testing.T) {
		cart := pos.NewCart()
		cart.AddItem(serviceLine(1, 20))
		cart.AddItem(serviceLine(1, 20))

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.True(t, cart.Total.Equal(decimal.NewFromInt(40)))
	})

	t.Run("same id different type stays separate", func(t *testing.T) {
		cart := pos.NewCart()
		cart.AddItem(serviceLine(1, 20))
		cart.AddItem(productLine(1, 5))

		assert.Len(t, cart.Items, 2)
		assert.True(t, cart.Total.Equal(decimal.NewFromInt(25)))
	})

	t.Run("promotions never merge", func(t *testing.T) {
		cart := pos.NewCart()
		cart.AddItem(dynamicPromo(9, 10))
		cart.AddItem(dynamicPromo(9, 10))

		assert.Len(t, cart.Items, 2)
	})

	t.Run("appointment linked lines keep separate lines", func(t *testing.T) {
		apA, apB := uint(10), uint(11)
		first := serviceLine(1, 20)
		first.AppointmentID = &apA
		second := serviceLine(1, 20)
		second.AppointmentID = &apB

		cart := pos.NewCart()
		cart.AddItem(first)
		cart.AddItem(second)

		require.Len(t, cart.Items, 2)
		linked := map[uint]bool{}
		for _, it := range cart.Items {
			require.NotNil(t, it.AppointmentID)
			linked[*it.AppointmentID] = true
		}
		assert.Len(t, linked, 2, "each paid appointment keeps its own line")
		assert.True(t, cart.Total.Equal(decimal.NewFromInt(40)))
	})

	t.Run("linked line does not fold into an unlinked one", func(t *testing.T) {
		apID := uint(10)
		linked := serviceLine(1, 20)
		linked.AppointmentID = &apID

		cart := pos.NewCart()
		cart.AddItem(serviceLine(1, 20))
		cart.AddItem(linked)

		require.Len(t, cart.Items, 2)
	})
}

func TestCartDynamicPromotion(t *testing.T) {
	t.Parallel()

	t.Run("percentage applies to the non promo subtotal", func(t *testing.T) {
		cart := pos.NewCart()
		cart.AddItem(serviceLine(1, 20))
		cart.AddItem(dynamicPromo(9, 10))

		// 20 - 10% of 20
		assert.True(t, cart.Total.Equal(decimal.NewFromInt(18)), "total = %s", cart.Total)

		promo := cart.Items[1]
		assert.True(t, promo.Price.Equal(decimal.NewFromInt(-2)), "promo price = %s", promo.Price)
	})

	t.Run("promo value follows later additions", func(t *testing.T) {
		cart := pos.NewCart()
		cart.AddItem(serviceLine(1, 20))
		cart.AddItem(dynamicPromo(9, 10))
		cart.AddItem(serviceLine(2, 20))

		// 40 - 10% of 40
		assert.True(t, cart.Total.Equal(decimal.NewFromInt(36)), "total = %s", cart.Total)
		assert.True(t, cart.Items[1].Price.Equal(decimal.NewFromInt(-4)))
	})

	t.Run("fixed price promotion is not recomputed", func(t *testing.T) {
		cart := pos.NewCart()
		cart.AddItem(serviceLine(1, 20))
		cart.AddItem(pos.CartItem{
			ID:    5,
			Name:  "Combo",
			Type:  pos.ItemPromotion,
			Price: decimal.NewFromInt(-3),
		})
		cart.AddItem(serviceLine(2, 20))

		assert.True(t, cart.Total.Equal(decimal.NewFromInt(37)), "total = %s", cart.Total)
	})

	t.Run("recompute is idempotent", func(t *testing.T) {
		cart := pos.NewCart()
		cart.AddItem(serviceLine(1, 20))
		cart.AddItem(dynamicPromo(9, 10))

		first := cart.Recompute()
		second := cart.Recompute()
		assert.True(t, first.Equal(second))
	})
}

func TestCartRemoveAndClear(t *testing.T) {
	t.Parallel()

	t.Run("removing a line reprices dynamic promos", func(t *testing.T) {
		cart := pos.NewCart()
		cart.AddItem(serviceLine(1, 20))
		cart.AddItem(serviceLine(2, 30))
		cart.AddItem(dynamicPromo(9, 10))

		require.NoError(t, cart.RemoveItem(2, pos.ItemService))

		assert.True(t, cart.Total.Equal(decimal.NewFromInt(18)), "total = %s", cart.Total)
	})

	t.Run("removal only touches the matching type", func(t *testing.T) {
		cart := pos.NewCart()
		cart.AddItem(serviceLine(1, 20))
		cart.AddItem(productLine(1, 5))

		require.NoError(t, cart.RemoveItem(1, pos.ItemProduct))

		require.Len(t, cart.Items, 1)
		assert.Equal(t, pos.ItemService, cart.Items[0].Type)
		assert.True(t, cart.Total.Equal(decimal.NewFromInt(20)))
	})

	t.Run("removing an absent id fails", func(t *testing.T) {
		cart := pos.NewCart()
		cart.AddItem(serviceLine(1, 20))

		err := cart.RemoveItem(99, pos.ItemService)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	})

	t.Run("matching id of another type is not enough", func(t *testing.T) {
		cart := pos.NewCart()
		cart.AddItem(serviceLine(1, 20))

		err := cart.RemoveItem(1, pos.ItemProduct)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
		assert.Len(t, cart.Items, 1)
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		cart := pos.NewCart()
		cart.AddItem(serviceLine(1, 20))

		cart.Clear()
		assert.Empty(t, cart.Items)
		assert.True(t, cart.Total.IsZero())
	})
}

func TestCartSetItemBarber(t *testing.T) {
	t.Parallel()

	cart := pos.NewCart()
	cart.AddItem(serviceLine(1, 20))
	cart.AddItem(productLine(1, 5))

	require.NoError(t, cart.SetItemBarber(1, pos.ItemService, 4))
	require.NotNil(t, cart.Items[0].BarberID)
	assert.Equal(t, uint(4), *cart.Items[0].BarberID)
	assert.Nil(t, cart.Items[1].BarberID, "product line with the same id stays untouched")

	err := cart.SetItemBarber(99, pos.ItemService, 4)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}
