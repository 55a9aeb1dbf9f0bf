package command

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/inventory"
	"github.com/osse101/Stashkeeper_Go/internal/logger"
	"github.com/osse101/Stashkeeper_Go/internal/media"
	"github.com/osse101/Stashkeeper_Go/internal/state"
)

// handlerFunc runs one command type. The payload is still raw JSON.
type handlerFunc func(ctx context.Context, actor string, payload json.RawMessage) (interface{}, error)

// Dispatcher routes commands to the state service by type
type Dispatcher struct {
	svc      state.Service
	validate *validator.Validate
	handlers map[string]handlerFunc
}

// NewDispatcher creates a dispatcher with every command type registered
func NewDispatcher(svc state.Service) *Dispatcher {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	d := &Dispatcher{svc: svc, validate: v}
	d.handlers = map[string]handlerFunc{
		TypeListUsers:       bind(d, d.listUsers),
		TypeListInventories: bind(d, d.listInventories),
		TypeGetInventory:    bind(d, d.getInventory),
		TypeGetShop:         bind(d, d.getShop),
		TypeListWeapons:     bind(d, d.listWeapons),

		TypeRenameFixedCategory: bind(d, func(ctx context.Context, actor string, p renameFixedCategoryPayload) (interface{}, error) {
			return d.svc.RenameFixedCategory(ctx, actor, p.InventoryID, p.Index, p.Name)
		}),
		TypeCreateCustomCategory: bind(d, func(ctx context.Context, actor string, p createCustomCategoryPayload) (interface{}, error) {
			return d.svc.CreateCustomCategory(ctx, actor, p.InventoryID, p.FixedID, p.Name)
		}),
		TypeRenameCustomCategory: bind(d, func(ctx context.Context, actor string, p renameCustomCategoryPayload) (interface{}, error) {
			return d.svc.RenameCustomCategory(ctx, actor, p.InventoryID, p.CategoryID, p.Name)
		}),
		TypeDeleteCustomCategory: bind(d, func(ctx context.Context, actor string, p deleteCustomCategoryPayload) (interface{}, error) {
			return d.svc.DeleteCustomCategory(ctx, actor, p.InventoryID, p.CategoryID, p.Confirm)
		}),
		TypeCreateItem: bind(d, func(ctx context.Context, actor string, p createItemPayload) (interface{}, error) {
			return d.svc.CreateItem(ctx, actor, p.InventoryID, p.FixedID, p.CategoryID, domain.NewItem{Name: p.Name, Qty: p.Qty, Desc: p.Desc})
		}),
		TypeEditItem: bind(d, func(ctx context.Context, actor string, p editItemPayload) (interface{}, error) {
			return d.svc.EditItem(ctx, actor, p.InventoryID, p.ItemID, p.Patch)
		}),
		TypeDeleteItem: bind(d, func(ctx context.Context, actor string, p deleteItemPayload) (interface{}, error) {
			return d.svc.DeleteItem(ctx, actor, p.InventoryID, p.CategoryID, p.ItemID)
		}),
		TypeMoveItem: bind(d, func(ctx context.Context, actor string, p moveItemPayload) (interface{}, error) {
			return d.svc.MoveItem(ctx, actor, p.InventoryID, p.FromCategoryID, p.ToCategoryID, p.ItemID)
		}),
		TypeTransferItem: bind(d, func(ctx context.Context, actor string, p transferItemPayload) (interface{}, error) {
			req := inventory.TransferRequest{FixedID: p.FixedID, CategoryID: p.CategoryID, ItemID: p.ItemID, Quantity: p.Quantity}
			return d.svc.TransferItem(ctx, actor, p.SourceID, req, p.TargetID)
		}),
		TypeSetMoney: bind(d, func(ctx context.Context, actor string, p setMoneyPayload) (interface{}, error) {
			return d.svc.SetMoney(ctx, actor, p.InventoryID, p.Amount)
		}),
		TypeSetMeta: bind(d, func(ctx context.Context, actor string, p setMetaPayload) (interface{}, error) {
			return d.svc.SetMeta(ctx, actor, p.InventoryID, domain.Meta{Status: p.Status, Notes: p.Notes})
		}),
		TypeShoot: bind(d, func(ctx context.Context, actor string, p weaponItemPayload) (interface{}, error) {
			return d.svc.Shoot(ctx, actor, p.InventoryID, p.ItemID)
		}),
		TypeReloadWeapon: bind(d, func(ctx context.Context, actor string, p weaponItemPayload) (interface{}, error) {
			return d.svc.ReloadWeapon(ctx, actor, p.InventoryID, p.ItemID)
		}),
		TypeCreateWeapon: bind(d, d.createWeapon),
		TypeDeleteWeapon: bind(d, func(ctx context.Context, actor string, p deleteWeaponPayload) (interface{}, error) {
			return d.svc.DeleteWeapon(ctx, actor, p.WeaponID, p.Confirm)
		}),
		TypeAddWeaponToStand: bind(d, func(ctx context.Context, actor string, p standWeaponPayload) (interface{}, error) {
			return d.svc.AddWeaponToStand(ctx, actor, p.StandID, p.WeaponID)
		}),
		TypeRemoveWeaponFromStand: bind(d, func(ctx context.Context, actor string, p standWeaponPayload) (interface{}, error) {
			return d.svc.RemoveWeaponFromStand(ctx, actor, p.StandID, p.WeaponID)
		}),
		TypeRandomizeStand: bind(d, func(ctx context.Context, actor string, p standPayload) (interface{}, error) {
			return d.svc.RandomizeStand(ctx, actor, p.StandID)
		}),
		TypePurchase: bind(d, func(ctx context.Context, actor string, p purchasePayload) (interface{}, error) {
			return d.svc.Purchase(ctx, actor, p.StandID, p.WeaponID, p.BuyerID)
		}),
		TypeReloadState: bind(d, func(ctx context.Context, actor string, _ struct{}) (interface{}, error) {
			if err := d.svc.AdminReload(ctx, actor); err != nil {
				return nil, err
			}
			return map[string]uint64{"version": d.svc.Version()}, nil
		}),
	}
	return d
}

// bind decodes and validates the payload before calling fn
func bind[T any](d *Dispatcher, fn func(ctx context.Context, actor string, p T) (interface{}, error)) handlerFunc {
	return func(ctx context.Context, actor string, raw json.RawMessage) (interface{}, error) {
		var p T
		if len(raw) > 0 && string(raw) != "null" {
			if err := json.Unmarshal(raw, &p); err != nil {
				return nil, &payloadError{err: err}
			}
		}
		if reflect.TypeOf(p).Kind() == reflect.Struct {
			if err := d.validate.Struct(p); err != nil {
				return nil, &payloadError{err: err, fields: fieldErrors(err)}
			}
		}
		return fn(ctx, actor, p)
	}
}

// Types returns the registered command types
func (d *Dispatcher) Types() []string {
	out := make([]string, 0, len(d.handlers))
	for t := range d.handlers {
		out = append(out, t)
	}
	return out
}

// Dispatch runs one command and builds its reply. It never returns an error:
// failures are reported in the reply.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) Reply {
	log := logger.FromContext(ctx)

	handler, ok := d.handlers[cmd.Type]
	if !ok {
		return errorReply(cmd, &Error{Code: CodeUnknownCommand, Message: fmt.Sprintf(MsgUnknownCommandFmt, cmd.Type)})
	}

	data, err := handler(ctx, cmd.Actor, cmd.Payload)
	if err != nil {
		body := ToError(err)
		log.Debug(LogMsgCommandFailed, "type", cmd.Type, "id", cmd.ID, "actor", cmd.Actor, "code", body.Code, "error", err)
		return errorReply(cmd, body)
	}

	log.Debug(LogMsgCommandHandled, "type", cmd.Type, "id", cmd.ID, "actor", cmd.Actor)
	reply := Reply{Kind: ReplyResult, ID: cmd.ID, Type: cmd.Type, Data: data}
	if res, ok := data.(*state.Result); ok && res != nil {
		reply.Version = res.Version
	} else {
		reply.Version = d.svc.Version()
	}
	return reply
}

func errorReply(cmd Command, body *Error) Reply {
	return Reply{Kind: ReplyError, ID: cmd.ID, Type: cmd.Type, Error: body}
}

func (d *Dispatcher) listUsers(ctx context.Context, _ string, _ struct{}) (interface{}, error) {
	return d.svc.ListUsers(ctx), nil
}

func (d *Dispatcher) listInventories(ctx context.Context, actor string, _ struct{}) (interface{}, error) {
	return d.svc.ListInventories(ctx, actor)
}

func (d *Dispatcher) getInventory(ctx context.Context, actor string, p inventoryPayload) (interface{}, error) {
	return d.svc.GetInventory(ctx, actor, p.InventoryID)
}

func (d *Dispatcher) getShop(ctx context.Context, _ string, _ struct{}) (interface{}, error) {
	return d.svc.GetShop(ctx), nil
}

func (d *Dispatcher) listWeapons(ctx context.Context, _ string, _ struct{}) (interface{}, error) {
	return d.svc.ListWeapons(ctx), nil
}

func (d *Dispatcher) createWeapon(ctx context.Context, actor string, p createWeaponPayload) (interface{}, error) {
	var image *media.Upload
	if p.Image != nil {
		up, err := media.DecodeUpload(p.Image.FileName, p.Image.Data)
		if err != nil {
			return nil, err
		}
		image = &up
	}
	return d.svc.CreateWeapon(ctx, actor, p.WeaponForm.NewWeapon(), image)
}
