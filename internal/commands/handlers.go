// internal/commands/handlers.go
package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tpcguild/pointsbot/internal/services"
)

// Handlers holds one handler per chat command. Every handler is a plain
// orchestration: permission check, argument validation, service calls,
// reply. No state is kept between invocations.
type Handlers struct {
	ledger   *services.LedgerService
	shop     *services.ShopService
	guard    *PermissionGuard
	replier  Replier
	resolver UserResolver
	prefix   string
}

func NewHandlers(
	ledger *services.LedgerService,
	shop *services.ShopService,
	guard *PermissionGuard,
	replier Replier,
	resolver UserResolver,
	prefix string,
) *Handlers {
	return &Handlers{
		ledger:   ledger,
		shop:     shop,
		guard:    guard,
		replier:  replier,
		resolver: resolver,
		prefix:   prefix,
	}
}

// Register wires every command into the dispatcher.
func (h *Handlers) Register(d *Dispatcher) {
	d.Register("getpoints", h.GetPoints)
	d.Register("givepoints", h.GivePoints)
	d.Register("givegems", h.GiveGems)
	d.Register("store", h.Store)
	d.Register("addproduct", h.AddProduct)
	d.Register("delproduct", h.DelProduct)
	d.Register("buy", h.Buy)
}

// GetPoints shows a member's balances. With no argument it targets the
// invoker; with one it targets that user, if the platform knows them.
func (h *Handlers) GetPoints(ctx *Context) error {
	h.replier.Typing(ctx.ChannelID)

	target := ctx.AuthorID
	args := SplitSimple(ctx.Content, h.prefix)
	if len(args) > 1 {
		target = args[1]
	}

	username, err := h.resolver.ResolveUser(target)
	if err != nil {
		return h.replier.SendEmbed(ctx.ChannelID, "Point Count", "Could not find user")
	}

	profile, err := h.ledger.GetProfile(target)
	if err != nil {
		h.replyFailure(ctx.ChannelID)
		return err
	}

	return h.replier.SendEmbed(ctx.ChannelID, username+"'s points", profile.Summary())
}

// GivePoints adds points to a member. Admin only; non-admins are
// silently ignored.
func (h *Handlers) GivePoints(ctx *Context) error {
	if !h.guard.IsAdmin(ctx.Roles) {
		return nil
	}

	h.replier.Typing(ctx.ChannelID)

	req, ok := h.parseGrant(ctx.Content)
	if !ok {
		return h.replyUsage(ctx.ChannelID, "givepoints [user_id] [amount]")
	}

	profile, err := h.ledger.GrantPoints(req)
	if err != nil {
		if isValidationError(err) {
			return h.replyUsage(ctx.ChannelID, "givepoints [user_id] [amount]")
		}
		h.replyFailure(ctx.ChannelID)
		return err
	}

	return h.replier.SendEmbed(ctx.ChannelID, "Given points!", profile.Summary())
}

// GiveGems adds gems to a member. Admin only; non-admins are silently
// ignored.
func (h *Handlers) GiveGems(ctx *Context) error {
	if !h.guard.IsAdmin(ctx.Roles) {
		return nil
	}

	h.replier.Typing(ctx.ChannelID)

	req, ok := h.parseGrant(ctx.Content)
	if !ok {
		return h.replyUsage(ctx.ChannelID, "givegems [user_id] [amount]")
	}

	profile, err := h.ledger.GrantGems(req)
	if err != nil {
		if isValidationError(err) {
			return h.replyUsage(ctx.ChannelID, "givegems [user_id] [amount]")
		}
		h.replyFailure(ctx.ChannelID)
		return err
	}

	return h.replier.SendEmbed(ctx.ChannelID, "Given gems!", profile.Summary())
}

// Store lists every product. An empty store still gets the title.
func (h *Handlers) Store(ctx *Context) error {
	products, err := h.shop.ListProducts()
	if err != nil {
		h.replyFailure(ctx.ChannelID)
		return err
	}

	lines := make([]string, 0, len(products))
	for _, product := range products {
		lines = append(lines, product.Line())
	}

	return h.replier.SendEmbed(ctx.ChannelID, "Products: ", strings.Join(lines, "\n\n"))
}

// AddProduct upserts a store item. Admin only. Arguments are shell-split
// so names and descriptions may be quoted.
func (h *Handlers) AddProduct(ctx *Context) error {
	if !h.guard.IsAdmin(ctx.Roles) {
		return nil
	}

	h.replier.Typing(ctx.ChannelID)

	const usage = `addproduct [key] [name] [description] [price] [quantity]`

	args, err := SplitQuoted(ctx.Content, h.prefix)
	if err != nil || len(args) < 6 {
		return h.replyUsage(ctx.ChannelID, usage)
	}

	price, priceErr := strconv.ParseInt(args[4], 10, 64)
	quantity, quantityErr := strconv.ParseInt(args[5], 10, 64)
	if priceErr != nil || quantityErr != nil {
		return h.replyUsage(ctx.ChannelID, usage)
	}

	product, err := h.shop.AddProduct(&services.AddProductRequest{
		Key:         args[1],
		Name:        args[2],
		Description: args[3],
		Price:       price,
		Quantity:    quantity,
	})
	if err != nil {
		if isValidationError(err) {
			return h.replyUsage(ctx.ChannelID, usage)
		}
		h.replyFailure(ctx.ChannelID)
		return err
	}

	return h.replier.SendEmbed(ctx.ChannelID, "Added Product", product.Line())
}

// DelProduct removes a store item by key. Admin only. Deleting a key
// that does not exist still gets the confirmation reply.
func (h *Handlers) DelProduct(ctx *Context) error {
	if !h.guard.IsAdmin(ctx.Roles) {
		return nil
	}

	h.replier.Typing(ctx.ChannelID)

	args, err := SplitQuoted(ctx.Content, h.prefix)
	if err != nil || len(args) < 2 {
		return h.replyUsage(ctx.ChannelID, "delproduct [key]")
	}

	key := args[1]
	if err := h.shop.RemoveProduct(key); err != nil {
		h.replyFailure(ctx.ChannelID)
		return err
	}

	return h.replier.SendEmbed(ctx.ChannelID, "Deleted Product", fmt.Sprintf("Deleted product %s", key))
}

// Buy purchases one unit of a product with the invoker's gems.
func (h *Handlers) Buy(ctx *Context) error {
	h.replier.Typing(ctx.ChannelID)

	args, err := SplitQuoted(ctx.Content, h.prefix)
	if err != nil || len(args) < 2 {
		return h.replyUsage(ctx.ChannelID, "buy [product_id]")
	}

	result, err := h.shop.Purchase(ctx.AuthorID, args[1])
	if err != nil {
		var afford *services.InsufficientGemsError
		var stock *services.OutOfStockError

		switch {
		case errors.Is(err, services.ErrProductNotFound):
			return h.replier.SendEmbed(ctx.ChannelID, "Cannot find product",
				"Could not find the product you are refering to")
		case errors.As(err, &afford):
			return h.replier.SendEmbed(ctx.ChannelID, "You can't afford that!",
				fmt.Sprintf("You only have %d gems, but %q costs %d gems",
					afford.Credits, afford.Product.Name, afford.Product.Price))
		case errors.As(err, &stock):
			return h.replier.SendEmbed(ctx.ChannelID, "Out of stock",
				fmt.Sprintf("Sorry, we don't have any more of: %s", stock.Product.Name))
		default:
			h.replyFailure(ctx.ChannelID)
			return err
		}
	}

	return h.replier.SendEmbed(ctx.ChannelID, "Purchase successful",
		fmt.Sprintf("You just purchased a %s\nYou have %d gems left",
			result.Product.Name, result.Profile.Credits))
}

func (h *Handlers) parseGrant(content string) (*services.GrantRequest, bool) {
	args := SplitSimple(content, h.prefix)
	if len(args) < 3 {
		return nil, false
	}

	amount, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return nil, false
	}

	return &services.GrantRequest{DiscordID: args[1], Amount: amount}, true
}

func (h *Handlers) replyUsage(channelID, usage string) error {
	return h.replier.SendEmbed(channelID, "Usage", h.prefix+usage)
}

// replyFailure tells the invoker a record-store call failed, so errors
// never look like the bot simply ignored them.
func (h *Handlers) replyFailure(channelID string) {
	h.replier.SendEmbed(channelID, "Something went wrong", "Something went wrong, please try again")
}

func isValidationError(err error) bool {
	var validationErrs validator.ValidationErrors
	return errors.As(err, &validationErrs)
}
