// internal/commands/handlers_test.go
package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpcguild/pointsbot/internal/models"
	"github.com/tpcguild/pointsbot/internal/services"
	"github.com/tpcguild/pointsbot/internal/store"
	"github.com/tpcguild/pointsbot/internal/store/storetest"
)

const (
	profilesTable  = "TPCMemberPoints"
	productsTable  = "TPCStore"
	purchasesTable = "TPCPurchases"
)

type reply struct {
	title       string
	description string
}

type fakeReplier struct {
	replies []reply
}

func (f *fakeReplier) SendEmbed(channelID, title, description string) error {
	f.replies = append(f.replies, reply{title, description})
	return nil
}

func (f *fakeReplier) Typing(channelID string) {}

type fakeResolver struct {
	users map[string]string
}

func (f *fakeResolver) ResolveUser(userID string) (string, error) {
	username, ok := f.users[userID]
	if !ok {
		return "", errors.New("unknown user")
	}
	return username, nil
}

type handlerFixture struct {
	handlers *Handlers
	db       *storetest.FakeDynamo
	replier  *fakeReplier
	profiles *store.ProfileStore
	products *store.ProductStore
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	db := storetest.NewFakeDynamo(map[string]string{
		profilesTable:  "discord_id",
		productsTable:  "key",
		purchasesTable: "id",
	})

	profiles := store.NewProfileStore(db, profilesTable)
	products := store.NewProductStore(db, productsTable)
	purchases := store.NewPurchaseStore(db, purchasesTable)

	ledger := services.NewLedgerService(profiles)
	shop := services.NewShopService(products, purchases, profiles)

	replier := &fakeReplier{}
	resolver := &fakeResolver{users: map[string]string{
		"100": "alice",
		"200": "bob",
	}}

	handlers := NewHandlers(ledger, shop, NewPermissionGuard([]string{"adminrole"}), replier, resolver, "~")

	return &handlerFixture{
		handlers: handlers,
		db:       db,
		replier:  replier,
		profiles: profiles,
		products: products,
	}
}

func adminCtx(content string) *Context {
	return &Context{ChannelID: "chan", AuthorID: "100", Roles: []string{"adminrole"}, Content: content}
}

func memberCtx(content string) *Context {
	return &Context{ChannelID: "chan", AuthorID: "100", Roles: []string{"member"}, Content: content}
}

func TestGetPointsDefaultsToInvoker(t *testing.T) {
	f := newHandlerFixture(t)

	err := f.handlers.GetPoints(memberCtx("~getpoints"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "alice's points", f.replier.replies[0].title)
	assert.Equal(t, "0 points\n0 gems", f.replier.replies[0].description)

	// Reading a missing profile must not create one
	assert.Zero(t, f.db.WriteCount())
}

func TestGetPointsTargetsSecondArgument(t *testing.T) {
	f := newHandlerFixture(t)
	require.NoError(t, f.profiles.Put(&models.Profile{DiscordID: "200", Points: 7, Credits: 3}))

	err := f.handlers.GetPoints(memberCtx("~getpoints 200"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "bob's points", f.replier.replies[0].title)
	assert.Equal(t, "7 points\n3 gems", f.replier.replies[0].description)
}

func TestGetPointsUnknownUser(t *testing.T) {
	f := newHandlerFixture(t)

	err := f.handlers.GetPoints(memberCtx("~getpoints 999"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Point Count", f.replier.replies[0].title)
	assert.Equal(t, "Could not find user", f.replier.replies[0].description)
	assert.Zero(t, f.db.WriteCount())
}

func TestAdminCommandsIgnoreNonAdmins(t *testing.T) {
	f := newHandlerFixture(t)

	contents := []string{
		"~givepoints 200 50",
		"~givegems 200 50",
		`~addproduct sword "Iron Sword" "A basic blade" 50 3`,
		"~delproduct sword",
	}
	invocations := []HandlerFunc{
		f.handlers.GivePoints,
		f.handlers.GiveGems,
		f.handlers.AddProduct,
		f.handlers.DelProduct,
	}

	for i, invoke := range invocations {
		require.NoError(t, invoke(memberCtx(contents[i])))
	}

	// No reply, no write
	assert.Empty(t, f.replier.replies)
	assert.Zero(t, f.db.WriteCount())
}

func TestGivePointsUpdatesBalance(t *testing.T) {
	f := newHandlerFixture(t)

	err := f.handlers.GivePoints(adminCtx("~givepoints 200 50"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Given points!", f.replier.replies[0].title)
	assert.Equal(t, "50 points\n0 gems", f.replier.replies[0].description)

	profile, err := f.profiles.Get("200")
	require.NoError(t, err)
	assert.Equal(t, int64(50), profile.Points)
	assert.Zero(t, profile.Credits)
}

func TestGiveGemsUpdatesBalance(t *testing.T) {
	f := newHandlerFixture(t)

	err := f.handlers.GiveGems(adminCtx("~givegems 200 25"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Given gems!", f.replier.replies[0].title)
	assert.Equal(t, "0 points\n25 gems", f.replier.replies[0].description)
}

func TestGivePointsMalformedAmountRepliesUsage(t *testing.T) {
	f := newHandlerFixture(t)

	err := f.handlers.GivePoints(adminCtx("~givepoints 200 lots"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Usage", f.replier.replies[0].title)
	assert.Equal(t, "~givepoints [user_id] [amount]", f.replier.replies[0].description)
	assert.Zero(t, f.db.WriteCount())
}

func TestGivePointsMissingArgumentsRepliesUsage(t *testing.T) {
	f := newHandlerFixture(t)

	err := f.handlers.GivePoints(adminCtx("~givepoints"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Usage", f.replier.replies[0].title)
	assert.Zero(t, f.db.WriteCount())
}

func TestGivePointsRejectsNonSnowflakeTarget(t *testing.T) {
	f := newHandlerFixture(t)

	err := f.handlers.GivePoints(adminCtx("~givepoints somename 50"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Usage", f.replier.replies[0].title)
	assert.Zero(t, f.db.WriteCount())
}

func TestAddProductThenStoreListsIt(t *testing.T) {
	f := newHandlerFixture(t)

	err := f.handlers.AddProduct(adminCtx(`~addproduct sword "Iron Sword" "A basic blade" 50 3`))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Added Product", f.replier.replies[0].title)
	assert.Equal(t, "sword: Iron Sword (50 gems, 3 left)\nA basic blade", f.replier.replies[0].description)

	err = f.handlers.Store(memberCtx("~store"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 2)
	assert.Equal(t, "Products: ", f.replier.replies[1].title)
	assert.Contains(t, f.replier.replies[1].description, "sword: Iron Sword (50 gems, 3 left)\nA basic blade")
}

func TestStoreEmptyStillReplies(t *testing.T) {
	f := newHandlerFixture(t)

	err := f.handlers.Store(memberCtx("~store"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Products: ", f.replier.replies[0].title)
	assert.Empty(t, f.replier.replies[0].description)
}

func TestAddProductMalformedPriceRepliesUsage(t *testing.T) {
	f := newHandlerFixture(t)

	err := f.handlers.AddProduct(adminCtx(`~addproduct sword "Iron Sword" "A basic blade" cheap 3`))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Usage", f.replier.replies[0].title)
	assert.Zero(t, f.db.WriteCount())
}

func TestDelProductConfirmsEvenWhenAbsent(t *testing.T) {
	f := newHandlerFixture(t)

	err := f.handlers.DelProduct(adminCtx("~delproduct ghost"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Deleted Product", f.replier.replies[0].title)
	assert.Equal(t, "Deleted product ghost", f.replier.replies[0].description)
	assert.Equal(t, 1, f.db.DeleteCount)
}

func TestBuyMissingKeyRepliesUsage(t *testing.T) {
	f := newHandlerFixture(t)

	err := f.handlers.Buy(memberCtx("~buy"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Usage", f.replier.replies[0].title)
	assert.Equal(t, "~buy [product_id]", f.replier.replies[0].description)
}

func TestBuyUnknownProduct(t *testing.T) {
	f := newHandlerFixture(t)

	err := f.handlers.Buy(memberCtx("~buy nothere"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Cannot find product", f.replier.replies[0].title)
	assert.Equal(t, "Could not find the product you are refering to", f.replier.replies[0].description)
}

func TestBuySuccessReply(t *testing.T) {
	f := newHandlerFixture(t)
	require.NoError(t, f.profiles.Put(&models.Profile{DiscordID: "100", Credits: 100}))
	require.NoError(t, f.products.Put(&models.Product{Key: "sword", Name: "Iron Sword", Description: "A basic blade", Price: 30, Quantity: 5}))

	err := f.handlers.Buy(memberCtx("~buy sword"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Purchase successful", f.replier.replies[0].title)
	assert.Equal(t, "You just purchased a Iron Sword\nYou have 70 gems left", f.replier.replies[0].description)
}

func TestBuyCannotAffordReply(t *testing.T) {
	f := newHandlerFixture(t)
	require.NoError(t, f.profiles.Put(&models.Profile{DiscordID: "100", Credits: 10}))
	require.NoError(t, f.products.Put(&models.Product{Key: "sword", Name: "Iron Sword", Description: "A basic blade", Price: 30, Quantity: 5}))

	err := f.handlers.Buy(memberCtx("~buy sword"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "You can't afford that!", f.replier.replies[0].title)
	assert.Equal(t, `You only have 10 gems, but "Iron Sword" costs 30 gems`, f.replier.replies[0].description)
}

func TestBuyOutOfStockReply(t *testing.T) {
	f := newHandlerFixture(t)
	require.NoError(t, f.profiles.Put(&models.Profile{DiscordID: "100", Credits: 100}))
	require.NoError(t, f.products.Put(&models.Product{Key: "sword", Name: "Iron Sword", Description: "A basic blade", Price: 30, Quantity: 0}))

	err := f.handlers.Buy(memberCtx("~buy sword"))
	require.NoError(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Out of stock", f.replier.replies[0].title)
	assert.Equal(t, "Sorry, we don't have any more of: Iron Sword", f.replier.replies[0].description)
}

func TestStoreFailureGetsGenericReply(t *testing.T) {
	f := newHandlerFixture(t)
	f.db.Err = errors.New("dynamodb unavailable")

	err := f.handlers.Store(memberCtx("~store"))
	require.Error(t, err)

	require.Len(t, f.replier.replies, 1)
	assert.Equal(t, "Something went wrong", f.replier.replies[0].title)
}
