package engine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NishaManivannan/Bakery-chatbot/internal/adapters/memory"
	"github.com/NishaManivannan/Bakery-chatbot/internal/catalog"
	"github.com/NishaManivannan/Bakery-chatbot/internal/engine"
	"github.com/NishaManivannan/Bakery-chatbot/pkg/domain"
)

func newTestEngine(t *testing.T, opts ...engine.Option) (*engine.Engine, *memory.OrderStore) {
	t.Helper()
	orders := memory.NewOrderStore()
	e := engine.New(catalog.Default(), orders, opts...)
	return e, orders
}

// drive sends messages in order and returns the last result.
func drive(t *testing.T, e *engine.Engine, st *domain.ConversationState, messages ...string) domain.Result {
	t.Helper()
	var res domain.Result
	for _, msg := range messages {
		res = e.Step(context.Background(), st, msg)
	}
	return res
}

func TestWelcome_EmitsMenuPrompt(t *testing.T) {
	e, _ := newTestEngine(t)
	st := domain.NewState(time.Now())

	res := e.Step(context.Background(), st, "hi")
	assert.Contains(t, res.Text, "Welcome to Bake Talks")
	assert.Equal(t, domain.StageGetAction, st.Stage)
	assert.Equal(t, domain.EffectNone, res.Effect.Kind)
}

func TestGetAction_Query_RendersCatalogAndRemains(t *testing.T) {
	e, _ := newTestEngine(t)
	st := domain.NewState(time.Now())

	res := drive(t, e, st, "hi", "query")
	assert.Contains(t, res.Text, "Here is our full pricing list:")
	assert.Contains(t, res.Text, "₹350")
	assert.Equal(t, domain.StageGetAction, st.Stage, "Query must not advance the stage")

	// "place" works directly afterwards.
	res = e.Step(context.Background(), st, "place")
	assert.Contains(t, res.Text, "What is your name?")
	assert.Equal(t, domain.StageGetName, st.Stage)
}

func TestGetAction_Unmatched_Reprompts(t *testing.T) {
	e, _ := newTestEngine(t)
	st := domain.NewState(time.Now())

	res := drive(t, e, st, "hi", "xyzzy")
	assert.Contains(t, res.Text, "Please type query, place, or cancel")
	assert.Equal(t, domain.StageGetAction, st.Stage)
}

func TestCakeOrder_EndToEnd_NoCustomization(t *testing.T) {
	e, orders := newTestEngine(t)
	st := domain.NewState(time.Now())

	res := drive(t, e, st,
		"hi",
		"place an order",
		"i am alice",
		"nine one four two five five one two zero zero",
		"cake please",
		"vanilla",
		"nuts",
		"no",
		"yes",
	)

	require.Equal(t, domain.EffectPersistOrder, res.Effect.Kind)
	require.NotNil(t, res.Effect.Order)
	order := *res.Effect.Order

	assert.Equal(t, "Alice", order.Name)
	assert.Equal(t, "9142551200", order.Phone)
	assert.Equal(t, "Cake", order.Category)
	assert.Equal(t, "Vanilla", order.Flavor)
	assert.Equal(t, "Nuts", order.Topping)
	assert.Nil(t, order.Customization)
	assert.Equal(t, 350, order.Cost, "Vanilla/Nuts base price with no surcharge")

	assert.Contains(t, res.Text, "Thank you Alice. Your order for a Vanilla cake with Nuts")
	assert.Contains(t, res.Text, "Total cost: ₹350.")

	exists, err := orders.ExistsByNamePhone(context.Background(), "Alice", "9142551200")
	require.NoError(t, err)
	assert.True(t, exists)

	// State is reset after placement.
	assert.Equal(t, domain.StageWelcome, st.Stage)
	assert.Empty(t, st.Name)
}

func TestCakeOrder_EndToEnd_WithCustomization(t *testing.T) {
	e, _ := newTestEngine(t)
	st := domain.NewState(time.Now())

	res := drive(t, e, st,
		"hi", "place", "i am alice", "(914) 255-1200",
		"cake", "vanilla", "nuts",
		"Happy Birthday!",
		"sure",
	)

	require.Equal(t, domain.EffectPersistOrder, res.Effect.Kind)
	order := *res.Effect.Order
	require.NotNil(t, order.Customization)
	assert.Equal(t, "Happy Birthday!", *order.Customization)
	assert.Equal(t, 380, order.Cost, "base 350 plus surcharge 30")
	assert.Contains(t, res.Text, "customization 'Happy Birthday!'")
}

func TestCookiesOrder_SkipsToppingAndCustomize(t *testing.T) {
	e, _ := newTestEngine(t)
	st := domain.NewState(time.Now())

	res := drive(t, e, st,
		"hi", "place", "bob", "1234567890", "cookies",
	)
	assert.Contains(t, res.Text, "Choose a cookie type")

	res = e.Step(context.Background(), st, "oatmeal raisin")
	assert.Equal(t, domain.StageConfirm, st.Stage, "Cookies go straight to Confirm")
	assert.Contains(t, res.Text, "You chose Oatmeal Raisin cookies")

	res = e.Step(context.Background(), st, "yes")
	require.Equal(t, domain.EffectPersistOrder, res.Effect.Kind)
	assert.Equal(t, 140, res.Effect.Order.Cost)
	assert.Nil(t, res.Effect.Order.Customization)
	assert.Contains(t, res.Text, "Oatmeal Raisin cookies has been placed successfully")
}

func TestPizzaOrder_SizeThenFlavor(t *testing.T) {
	e, _ := newTestEngine(t)
	st := domain.NewState(time.Now())

	res := drive(t, e, st,
		"hi", "place", "carol", "5551234567", "pizza",
	)
	assert.Contains(t, res.Text, "What size would you like?")

	res = e.Step(context.Background(), st, "large")
	assert.Contains(t, res.Text, "Large pizza selected. Now pick a flavor")
	assert.Equal(t, "Large", st.Size)

	res = e.Step(context.Background(), st, "I'd like pepperoni please")
	assert.Equal(t, "Pepperoni", st.Flavor)
	assert.Equal(t, domain.StageCustomize, st.Stage)

	res = drive(t, e, st, "extra cheese", "go ahead")
	require.Equal(t, domain.EffectPersistOrder, res.Effect.Kind)
	assert.Equal(t, 450+30, res.Effect.Order.Cost)
	assert.Contains(t, res.Text, "a Large Pepperoni pizza")
}

func TestFlavor_FuzzyMatch(t *testing.T) {
	e, _ := newTestEngine(t)
	st := domain.NewState(time.Now())

	drive(t, e, st, "hi", "place", "dave", "5551234567", "pizza", "medium")
	res := e.Step(context.Background(), st, "margarita")
	assert.Equal(t, "Margherita", st.Flavor)
	assert.Contains(t, res.Text, "Margherita pizza selected")
}

func TestGetPhone_InvalidStays(t *testing.T) {
	e, _ := newTestEngine(t)
	st := domain.NewState(time.Now())

	res := drive(t, e, st, "hi", "place", "eve", "12345")
	assert.Contains(t, res.Text, "valid 10-digit phone number")
	assert.Equal(t, domain.StageGetPhone, st.Stage)
	assert.Empty(t, st.Phone)

	res = e.Step(context.Background(), st, "914.255.1200")
	assert.Equal(t, "9142551200", st.Phone)
	assert.Equal(t, domain.StageCategory, st.Stage)
	assert.Contains(t, res.Text, "choose a category")
}

func TestHome_ResetsFromAnyStage(t *testing.T) {
	e, _ := newTestEngine(t)

	// Snapshot states after "home" from several depths; they must all match
	// a fresh reset.
	depths := [][]string{
		{"hi"},
		{"hi", "place", "frank"},
		{"hi", "place", "frank", "5551234567", "cake", "vanilla"},
	}
	for _, msgs := range depths {
		st := domain.NewState(time.Now())
		drive(t, e, st, msgs...)
		res := e.Step(context.Background(), st, "take me home")

		assert.Contains(t, res.Text, "Starting fresh. Welcome back to Bake Talks")
		assert.Equal(t, domain.StageWelcome, st.Stage)
		assert.Empty(t, st.Name)
		assert.Empty(t, st.Phone)
		assert.Empty(t, st.Category)
		assert.Empty(t, st.Flavor)
		assert.Nil(t, st.Customization)
	}
}

func TestTimeout(t *testing.T) {
	current := time.Now()
	clock := func() time.Time { return current }
	e, _ := newTestEngine(t, engine.WithClock(clock))

	t.Run("idle beyond timeout resets", func(t *testing.T) {
		st := domain.NewState(current)
		drive(t, e, st, "hi", "place", "grace")
		require.Equal(t, domain.StageGetPhone, st.Stage)

		current = current.Add(301 * time.Second)
		res := e.Step(context.Background(), st, "5551234567")

		assert.Equal(t, domain.StageGetAction, st.Stage, "reset lands on Welcome, which immediately prompts")
		assert.Contains(t, res.Text, "Welcome to Bake Talks")
		assert.Empty(t, st.Name, "collected fields are dropped")
	})

	t.Run("idle within timeout persists fields", func(t *testing.T) {
		st := domain.NewState(current)
		drive(t, e, st, "hi", "place", "grace")

		current = current.Add(299 * time.Second)
		e.Step(context.Background(), st, "5551234567")

		assert.Equal(t, "Grace", st.Name)
		assert.Equal(t, "5551234567", st.Phone)
		assert.Equal(t, domain.StageCategory, st.Stage)
	})
}

func TestConfirm_NoMatchCancels(t *testing.T) {
	e, orders := newTestEngine(t)
	st := domain.NewState(time.Now())

	// Note the affirmative set is matched by substring first, so the refusal
	// here must not contain "y", "ok" or any other keyword.
	res := drive(t, e, st,
		"hi", "place", "henry", "5551234567", "cookies", "sugar",
		"no",
	)

	assert.Contains(t, res.Text, "Order cancelled")
	assert.Equal(t, domain.EffectCancelOrder, res.Effect.Kind)
	assert.False(t, res.Effect.Deleted)
	assert.Equal(t, "Henry", res.Effect.CancelName)
	assert.Equal(t, domain.StageWelcome, st.Stage)
	assert.Equal(t, 0, orders.Len(), "nothing is persisted on cancellation")
}

func TestCancellationFlow(t *testing.T) {
	e, orders := newTestEngine(t)
	ctx := context.Background()

	// Place an order for Alice.
	st := domain.NewState(time.Now())
	drive(t, e, st,
		"hi", "place", "i am alice", "9142551200",
		"cookies", "sugar", "yes",
	)
	exists, err := orders.ExistsByNamePhone(ctx, "Alice", "9142551200")
	require.NoError(t, err)
	require.True(t, exists)

	// Cancel it.
	st = domain.NewState(time.Now())
	res := drive(t, e, st, "hi", "cancel", "i am alice", "nine one four two five five one two zero zero")

	assert.Contains(t, res.Text, "cancelled successfully")
	assert.Equal(t, domain.EffectCancelOrder, res.Effect.Kind)
	assert.True(t, res.Effect.Deleted)
	assert.Equal(t, "Alice", res.Effect.CancelName)
	assert.Equal(t, "9142551200", res.Effect.CancelPhone)
	assert.Equal(t, domain.StageWelcome, st.Stage)

	exists, err = orders.ExistsByNamePhone(ctx, "Alice", "9142551200")
	require.NoError(t, err)
	assert.False(t, exists)

	// Cancelling again reports not-found with no deletion side effect.
	st = domain.NewState(time.Now())
	res = drive(t, e, st, "hi", "cancel", "alice", "9142551200")
	assert.Contains(t, res.Text, "No matching order found")
	assert.Equal(t, domain.EffectNone, res.Effect.Kind)
	assert.Equal(t, domain.StageWelcome, st.Stage)
}

func TestCancellation_InvalidPhoneStays(t *testing.T) {
	e, _ := newTestEngine(t)
	st := domain.NewState(time.Now())

	res := drive(t, e, st, "hi", "cancel", "alice", "123")
	assert.Contains(t, res.Text, "Invalid phone number")
	assert.Equal(t, domain.StageCancelPhone, st.Stage)
	assert.Equal(t, "Alice", st.CancelName, "cancel slot survives the re-prompt")
}

func TestConfirm_InsertFailureKeepsStateForRetry(t *testing.T) {
	failing := &flakyOrderStore{failures: 1}
	e := engine.New(catalog.Default(), failing)
	st := domain.NewState(time.Now())

	res := drive(t, e, st,
		"hi", "place", "iris", "5551234567", "cookies", "sugar", "yes",
	)

	assert.Contains(t, res.Text, "could not be saved")
	assert.Equal(t, domain.EffectNone, res.Effect.Kind)
	assert.Equal(t, domain.StageConfirm, st.Stage, "state survives so the user can retry")

	// Retry succeeds once the store recovers.
	res = e.Step(context.Background(), st, "yes")
	assert.Equal(t, domain.EffectPersistOrder, res.Effect.Kind)
	assert.Equal(t, 1, len(failing.inserted))
}

func TestUnroutableStage_FallsBack(t *testing.T) {
	e, _ := newTestEngine(t)
	st := domain.NewState(time.Now())
	st.Stage = domain.Stage("corrupted")

	res := e.Step(context.Background(), st, "hello")
	assert.Contains(t, res.Text, "type home to restart")
	assert.Equal(t, domain.Stage("corrupted"), st.Stage, "fallback must not corrupt state further")
}

func TestStageOrder_NoSkippingRequiredFields(t *testing.T) {
	e, _ := newTestEngine(t)
	st := domain.NewState(time.Now())

	// Category keywords before the phone was collected stay in GetPhone.
	res := drive(t, e, st, "hi", "place", "judy", "cake with nuts")
	assert.Equal(t, domain.StageGetPhone, st.Stage)
	assert.NotContains(t, res.Text, "flavor")
}

// flakyOrderStore fails the first N inserts, then behaves.
type flakyOrderStore struct {
	failures int
	inserted []domain.Order
}

func (f *flakyOrderStore) Insert(ctx context.Context, order domain.Order) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("connection refused")
	}
	f.inserted = append(f.inserted, order)
	return nil
}

func (f *flakyOrderStore) ExistsByNamePhone(ctx context.Context, name, phone string) (bool, error) {
	for _, o := range f.inserted {
		if o.Name == name && o.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (f *flakyOrderStore) DeleteByNamePhone(ctx context.Context, name, phone string) error {
	return nil
}
