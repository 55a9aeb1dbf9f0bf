package command

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/inventory"
	"github.com/osse101/Stashkeeper_Go/internal/media"
	"github.com/osse101/Stashkeeper_Go/internal/state"
)

func newCommand(t *testing.T, typ, actor string, payload interface{}) Command {
	t.Helper()
	cmd := Command{ID: "c1", Type: typ, Actor: actor}
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		cmd.Payload = raw
	}
	return cmd
}

func TestDispatch_UnknownCommand(t *testing.T) {
	svc := new(state.MockService)
	d := NewDispatcher(svc)

	reply := d.Dispatch(context.Background(), Command{ID: "x", Type: "fly"})

	assert.Equal(t, ReplyError, reply.Kind)
	assert.Equal(t, "x", reply.ID)
	require.NotNil(t, reply.Error)
	assert.Equal(t, CodeUnknownCommand, reply.Error.Code)
	svc.AssertExpectations(t)
}

func TestDispatch_MalformedPayload(t *testing.T) {
	svc := new(state.MockService)
	d := NewDispatcher(svc)

	reply := d.Dispatch(context.Background(), Command{Type: TypeSetMoney, Payload: json.RawMessage(`{"amount": "lots"}`)})

	require.NotNil(t, reply.Error)
	assert.Equal(t, CodeInvalidPayload, reply.Error.Code)
	svc.AssertNotCalled(t, "SetMoney", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_PayloadValidation(t *testing.T) {
	svc := new(state.MockService)
	d := NewDispatcher(svc)

	reply := d.Dispatch(context.Background(), newCommand(t, TypeTransferItem, "senshi", map[string]interface{}{
		"source_id":   "senshi",
		"target_id":   "senshi",
		"fixed_id":    "senshi-fixed-1",
		"category_id": "senshi-cat-1",
		"item_id":     "senshi-item-1",
		"quantity":    0,
	}))

	require.NotNil(t, reply.Error)
	assert.Equal(t, CodeInvalidPayload, reply.Error.Code)
	assert.Contains(t, reply.Error.Fields, "quantity")
	assert.Contains(t, reply.Error.Fields, "target_id")
	svc.AssertExpectations(t)
}

func TestDispatch_TransferItem(t *testing.T) {
	svc := new(state.MockService)
	d := NewDispatcher(svc)

	req := inventory.TransferRequest{FixedID: "senshi-fixed-1", CategoryID: "senshi-cat-1", ItemID: "senshi-item-1", Quantity: 2}
	result := &state.Result{Applied: true, Version: 4, Transfer: &inventory.TransferResult{Moved: 1}}
	svc.On("TransferItem", mock.Anything, "senshi", "senshi", req, "carro").Return(result, nil)

	reply := d.Dispatch(context.Background(), newCommand(t, TypeTransferItem, "senshi", map[string]interface{}{
		"source_id":   "senshi",
		"target_id":   "carro",
		"fixed_id":    req.FixedID,
		"category_id": req.CategoryID,
		"item_id":     req.ItemID,
		"quantity":    2,
	}))

	assert.Equal(t, ReplyResult, reply.Kind)
	assert.Nil(t, reply.Error)
	assert.Equal(t, uint64(4), reply.Version)
	assert.Same(t, result, reply.Data)
	svc.AssertExpectations(t)
}

func TestDispatch_CreateWeaponDefaults(t *testing.T) {
	svc := new(state.MockService)
	d := NewDispatcher(svc)

	want := domain.NewWeapon{Name: "AK", Damage: 0, MagCapacity: 10, AmmoType: "9mm", Price: 1000}
	svc.On("CreateWeapon", mock.Anything, "gm", want, (*media.Upload)(nil)).
		Return(&state.Result{Applied: true, Version: 1}, nil)

	reply := d.Dispatch(context.Background(), newCommand(t, TypeCreateWeapon, "gm", map[string]interface{}{"name": "AK"}))

	assert.Nil(t, reply.Error)
	svc.AssertExpectations(t)
}

func TestDispatch_CreateWeaponWithImage(t *testing.T) {
	svc := new(state.MockService)
	d := NewDispatcher(svc)

	png := []byte("\x89PNG\r\n\x1a\n")
	svc.On("CreateWeapon", mock.Anything, "gm",
		domain.NewWeapon{Name: "Glock", Damage: 3, MagCapacity: 17, AmmoType: "9mm", Price: 0},
		mock.MatchedBy(func(up *media.Upload) bool {
			return up != nil && up.FileName == "glock.png" && string(up.Data) == string(png)
		}),
	).Return(&state.Result{Applied: true, Version: 2}, nil)

	reply := d.Dispatch(context.Background(), newCommand(t, TypeCreateWeapon, "gm", map[string]interface{}{
		"name":         "Glock",
		"damage":       3,
		"mag_capacity": 17,
		"price":        0,
		"image": map[string]string{
			"file_name": "glock.png",
			"data":      "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		},
	}))

	assert.Nil(t, reply.Error)
	svc.AssertExpectations(t)
}

func TestDispatch_ReadsReportCurrentVersion(t *testing.T) {
	svc := new(state.MockService)
	d := NewDispatcher(svc)

	invs := []domain.Inventory{{ID: "carro", Name: "Carro"}}
	svc.On("ListInventories", mock.Anything, "").Return(invs, nil)
	svc.On("Version").Return(uint64(9))

	reply := d.Dispatch(context.Background(), Command{Type: TypeListInventories})

	assert.Equal(t, ReplyResult, reply.Kind)
	assert.Equal(t, invs, reply.Data)
	assert.Equal(t, uint64(9), reply.Version)
	svc.AssertExpectations(t)
}

func TestDispatch_ReloadState(t *testing.T) {
	svc := new(state.MockService)
	d := NewDispatcher(svc)

	svc.On("AdminReload", mock.Anything, "gm").Return(nil)
	svc.On("Version").Return(uint64(3))
	svc.On("AdminReload", mock.Anything, "senshi").Return(fmt.Errorf("%w: gm only", domain.ErrPermissionDenied))

	reply := d.Dispatch(context.Background(), Command{Type: TypeReloadState, Actor: "gm"})
	assert.Nil(t, reply.Error)
	assert.Equal(t, map[string]uint64{"version": 3}, reply.Data)

	reply = d.Dispatch(context.Background(), Command{Type: TypeReloadState, Actor: "senshi"})
	require.NotNil(t, reply.Error)
	assert.Equal(t, CodePermissionDenied, reply.Error.Code)
	svc.AssertExpectations(t)
}

func TestDispatch_EveryTypeIsRegistered(t *testing.T) {
	d := NewDispatcher(new(state.MockService))
	assert.ElementsMatch(t, []string{
		TypeListUsers, TypeListInventories, TypeGetInventory, TypeGetShop, TypeListWeapons,
		TypeRenameFixedCategory, TypeCreateCustomCategory, TypeRenameCustomCategory, TypeDeleteCustomCategory,
		TypeCreateItem, TypeEditItem, TypeDeleteItem, TypeMoveItem, TypeTransferItem,
		TypeSetMoney, TypeSetMeta, TypeShoot, TypeReloadWeapon,
		TypeCreateWeapon, TypeDeleteWeapon, TypeAddWeaponToStand, TypeRemoveWeaponFromStand,
		TypeRandomizeStand, TypePurchase, TypeReloadState,
	}, d.Types())
}

func TestToError(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{fmt.Errorf("%w: name is required", domain.ErrValidation), CodeValidation},
		{domain.ErrInvalidIndex, CodeInvalidIndex},
		{domain.ErrConfirmationRequired, CodeConfirmationRequired},
		{fmt.Errorf("%w: ghost", domain.ErrUnknownUser), CodeUnknownUser},
		{fmt.Errorf("%w: gm only", domain.ErrPermissionDenied), CodePermissionDenied},
		{domain.ErrInsufficientFunds, CodeInsufficientFunds},
		{domain.ErrEmptyMagazine, CodeEmptyMagazine},
		{domain.ErrUnknownCapacity, CodeUnknownCapacity},
		{domain.ErrNoStockAvailable, CodeNoStockAvailable},
		{domain.ErrNotFound, CodeNotFound},
		{errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, ToError(tt.err).Code)
		})
	}
}

func TestToError_HidesStoreDetails(t *testing.T) {
	err := fmt.Errorf("%w: set_money: dial tcp 10.0.0.5:5432: connection refused", domain.ErrRemoteFailure)

	body := ToError(err)
	assert.Equal(t, CodeRemoteFailure, body.Code)
	assert.Equal(t, domain.ErrMsgRemoteFailure, body.Message)
	assert.NotContains(t, body.Message, "10.0.0.5")
}
