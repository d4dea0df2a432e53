package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/manifest"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testSecret               = "test-secret"
	owner kernel.PrincipalID = 11
)

type mockCommand[C any] struct {
	mock.Mock
}

func (m *mockCommand[C]) Handle(ctx context.Context, cmd C) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockResult[C, R any] struct {
	mock.Mock
}

func (m *mockResult[C, R]) Handle(ctx context.Context, in C) (R, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(R), args.Error(1)
}

// editableHandler stands in for a command handler that finds its entity
// editable and goes on to parse the request body.
type editableHandler[C any] struct {
	read  func(C) error
	calls int
}

func (h *editableHandler[C]) Handle(_ context.Context, cmd C) error {
	h.calls++
	return h.read(cmd)
}

type fakeIdempotencyStore struct {
	used     map[string]bool
	released []string
}

func (f *fakeIdempotencyStore) Reserve(_ context.Context, _ int64, key string) (bool, error) {
	if f.used[key] {
		return false, nil
	}
	f.used[key] = true
	return true, nil
}

func (f *fakeIdempotencyStore) Release(_ context.Context, _ int64, key string) error {
	delete(f.used, key)
	f.released = append(f.released, key)
	return nil
}

func token(t *testing.T, sub string, method jwt.SigningMethod) string {
	t.Helper()
	tkn := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newTestRouter(h Handlers, store IdempotencyStore) http.Handler {
	return NewRouter(RouterConfig{
		Server:      NewServer(h),
		JWTSecret:   testSecret,
		Log:         zerolog.Nop(),
		Idempotency: store,
	})
}

func do(t *testing.T, router http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token(t, owner.String(), jwt.SigningMethodHS256))
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func byOwner[C interface{ Principal() kernel.PrincipalID }]() any {
	return mock.MatchedBy(func(c C) bool { return c.Principal() == owner })
}

func TestAuth_MissingHeader_Returns401(t *testing.T) {
	router := newTestRouter(Handlers{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/v2/shipments", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_WrongAlgorithm_Returns401(t *testing.T) {
	router := newTestRouter(Handlers{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/v2/shipments", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "11", jwt.SigningMethodHS384))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_NonNumericSubject_Returns401(t *testing.T) {
	router := newTestRouter(Handlers{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/v2/shipments", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "alice", jwt.SigningMethodHS256))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListShipments_PassesPrincipalAndPage(t *testing.T) {
	list := new(mockResult[queries.ListShipmentsQuery, queries.ListShipmentsQueryResponse])
	list.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListShipmentsQuery) bool {
		return q.Principal() == owner && q.Page().Number() == 2 && q.Page().Limit() == 10
	})).Return(queries.ListShipmentsQueryResponse{
		Shipments:      []queries.ShipmentView{{ID: kernel.NewUUID(), TrackingNumber: "BX123"}},
		TotalPages:     3,
		TotalShipments: 21,
	}, nil).Once()

	rec := do(t, newTestRouter(Handlers{ListShipments: list}, nil), http.MethodGet, "/v2/shipments?page=2&limit=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[ShipmentsResponse](t, rec)
	assert.Equal(t, 3, got.TotalPages)
	assert.Equal(t, 21, got.TotalShipments)
	require.Len(t, got.Shipments, 1)
	assert.Equal(t, "BX123", got.Shipments[0].TrackingNumber)
	list.AssertExpectations(t)
}

func TestListShipments_LimitOverMaximum_Returns400(t *testing.T) {
	rec := do(t, newTestRouter(Handlers{}, nil), http.MethodGet, "/v2/shipments?limit=101", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decode[ErrorResponse](t, rec)
	require.Len(t, got.Violations, 1)
	assert.Equal(t, "limit", got.Violations[0].Path)
}

func TestGetShipment_MalformedID_Returns404(t *testing.T) {
	rec := do(t, newTestRouter(Handlers{}, nil), http.MethodGet, "/v2/shipments/not-a-uuid", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not found."}`, rec.Body.String())
}

func TestGetShipment_NotVisible_Returns404WithGenericMessage(t *testing.T) {
	get := new(mockResult[queries.GetShipmentQuery, queries.ShipmentView])
	get.On("Handle", mock.Anything, mock.Anything).
		Return(queries.ShipmentView{}, errs.NewObjectNotFoundError("shipment", "secret-id")).Once()

	rec := do(t, newTestRouter(Handlers{GetShipment: get}, nil), http.MethodGet, "/v2/shipments/"+kernel.NewUUID().String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not found."}`, rec.Body.String())
}

func TestCreateShipment_TooManyECommercePackages_Returns400BeforeOtherRules(t *testing.T) {
	create := new(mockResult[commands.CreateShipmentCommand, string])
	body := `{"shipment":{"entry_point":"LAX01","packages":[{"weight":0},{"weight":-1}]}}`

	rec := do(t, newTestRouter(Handlers{CreateShipment: create}, nil), http.MethodPost, "/v2/shipments", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, shipment.ErrTooManyPackages.Error(), decode[ErrorResponse](t, rec).Message)
	create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateShipment_MissingEntryPoint_ReturnsViolation(t *testing.T) {
	rec := do(t, newTestRouter(Handlers{}, nil), http.MethodPost, "/v2/shipments", `{"shipment":{"packages":[{"weight":1}]}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decode[ErrorResponse](t, rec)
	require.Len(t, got.Violations, 1)
	assert.Equal(t, "shipment.entry_point", got.Violations[0].Path)
}

func TestCreateShipment_Success_Returns201WithStoredView(t *testing.T) {
	create := new(mockResult[commands.CreateShipmentCommand, string])
	get := new(mockResult[queries.GetShipmentQuery, queries.ShipmentView])

	var created kernel.UUID
	create.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateShipmentCommand) bool {
		created = cmd.ShipmentID()
		return cmd.Principal() == owner && cmd.Details().Class == shipment.ECommerce
	})).Return("BX0001", nil).Once()
	get.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetShipmentQuery) bool {
		return q.ShipmentID().IsEqual(created)
	})).Return(queries.ShipmentView{TrackingNumber: "BX0001", EntryPoint: "LAX01"}, nil).Once()

	body := `{"shipment":{"entry_point":"lax01","packages":[{"weight":2}]}}`
	rec := do(t, newTestRouter(Handlers{CreateShipment: create, GetShipment: get}, nil), http.MethodPost, "/v2/shipments", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "BX0001", decode[ShipmentResponse](t, rec).Shipment.TrackingNumber)
	create.AssertExpectations(t)
	get.AssertExpectations(t)
}

func TestDeleteShipment_Outcomes(t *testing.T) {
	tests := []struct {
		name     string
		disposal shipment.Disposal
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "hard delete",
			disposal: shipment.DisposalDelete,
			wantCode: http.StatusNoContent,
		},
		{
			name:     "cancel",
			disposal: shipment.DisposalCancel,
			wantCode: http.StatusOK,
			wantBody: `{"message":"This shipment will be canceled."}`,
		},
		{
			name:     "cancel with label",
			disposal: shipment.DisposalCancelLabelRetained,
			wantCode: http.StatusOK,
			wantBody: `{"message":"This shipment will be canceled instead because it has a label."}`,
		},
		{
			name:     "refused",
			err:      errs.NewStateConflictError("shipment", "x", shipment.ErrNotDeletable.Error()),
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"Only test shipments and shipments without labels can be deleted."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			del := new(mockResult[commands.DeleteShipmentCommand, shipment.Disposal])
			del.On("Handle", mock.Anything, byOwner[commands.DeleteShipmentCommand]()).Return(tt.disposal, tt.err).Once()

			rec := do(t, newTestRouter(Handlers{DeleteShipment: del}, nil), http.MethodDelete, "/v2/shipments/"+kernel.NewUUID().String(), "")

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody == "" {
				assert.Empty(t, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			del.AssertExpectations(t)
		})
	}
}

func TestUpdateOverpack_Manifested_Returns403(t *testing.T) {
	update := new(mockCommand[commands.UpdateOverpackCommand])
	update.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewStateConflictError("overpack", "x", "Manifested overpacks cannot be updated.")).Once()

	body := `{"overpack":{"entry_point":"LAX01","height":10}}`
	rec := do(t, newTestRouter(Handlers{UpdateOverpack: update}, nil), http.MethodPut, "/v2/overpacks/"+kernel.NewUUID().String(), body)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Manifested overpacks cannot be updated."}`, rec.Body.String())
}

func TestUpdateOverpack_Manifested_InvalidBody_Returns403(t *testing.T) {
	update := new(mockCommand[commands.UpdateOverpackCommand])
	update.On("Handle", mock.Anything, byOwner[commands.UpdateOverpackCommand]()).
		Return(errs.NewStateConflictError("overpack", "x", "Manifested overpacks cannot be updated.")).Once()

	body := `{"overpack":{"entry_point":"","height":-1}}`
	rec := do(t, newTestRouter(Handlers{UpdateOverpack: update}, nil), http.MethodPut, "/v2/overpacks/"+kernel.NewUUID().String(), body)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Manifested overpacks cannot be updated."}`, rec.Body.String())
	update.AssertExpectations(t)
}

func TestUpdateOverpack_Editable_InvalidBody_ReturnsViolations(t *testing.T) {
	update := &editableHandler[commands.UpdateOverpackCommand]{
		read: func(cmd commands.UpdateOverpackCommand) error {
			_, err := cmd.Details()
			return err
		},
	}

	body := `{"overpack":{"entry_point":"","height":-1}}`
	rec := do(t, newTestRouter(Handlers{UpdateOverpack: update}, nil), http.MethodPut, "/v2/overpacks/"+kernel.NewUUID().String(), body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, update.calls)
	paths := make([]string, 0, 2)
	for _, v := range decode[ErrorResponse](t, rec).Violations {
		paths = append(paths, v.Path)
	}
	assert.Contains(t, paths, "overpack.entry_point")
	assert.Contains(t, paths, "overpack.height")
}

func TestPatchOverpack_MergePatchBody_ForwardsRefs(t *testing.T) {
	var removals, additions []string
	patch := &editableHandler[commands.PatchOverpackShipmentsCommand]{
		read: func(cmd commands.PatchOverpackShipmentsCommand) (err error) {
			removals, additions, err = cmd.Membership()
			return err
		},
	}
	get := new(mockResult[queries.GetOverpackQuery, queries.OverpackView])
	get.On("Handle", mock.Anything, mock.Anything).Return(queries.OverpackView{TotalShipments: 2}, nil).Once()

	body := `{"overpack":{"shipments":{"add":["BX1","BX3"],"remove":["BX2"]}}}`
	rec := do(t, newTestRouter(Handlers{PatchOverpackShipments: patch, GetOverpack: get}, nil),
		http.MethodPatch, "/v2/overpacks/"+kernel.NewUUID().String(), body,
		"Content-Type", "application/merge-patch+json")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[OverpackResponse](t, rec).Overpack.TotalShipments)
	assert.Equal(t, []string{"BX2"}, removals)
	assert.Equal(t, []string{"BX1", "BX3"}, additions)
}

func TestPatchOverpack_Manifested_MalformedBody_Returns403(t *testing.T) {
	patch := new(mockCommand[commands.PatchOverpackShipmentsCommand])
	patch.On("Handle", mock.Anything, byOwner[commands.PatchOverpackShipmentsCommand]()).
		Return(errs.NewStateConflictError("overpack", "x", "Manifested overpacks cannot be changed.")).Once()

	rec := do(t, newTestRouter(Handlers{PatchOverpackShipments: patch}, nil),
		http.MethodPatch, "/v2/overpacks/"+kernel.NewUUID().String(), `{"overpack":`,
		"Content-Type", "application/merge-patch+json")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Manifested overpacks cannot be changed."}`, rec.Body.String())
	patch.AssertExpectations(t)
}

func TestCreateManifest_Rejection_Returns400WithOverpackID(t *testing.T) {
	op := kernel.NewUUID().String()
	create := new(mockCommand[commands.CreateManifestCommand])
	create.On("Handle", mock.Anything, byOwner[commands.CreateManifestCommand]()).Return(&manifest.RejectionError{
		OverpackID: op,
		Reason:     manifest.NoShipments,
		Message:    "Overpacks with no Shipments (overpack id: " + op + ") cannot be manifested.",
	}).Once()

	body := `{"manifest":{"carrier":"DHL","overpacks":["` + op + `"]}}`
	rec := do(t, newTestRouter(Handlers{CreateManifest: create}, nil), http.MethodPost, "/v2/manifests", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[ErrorResponse](t, rec).Message, op)
}

func TestCreateManifest_MalformedOverpackID_ReturnsViolation(t *testing.T) {
	body := `{"manifest":{"carrier":"DHL","overpacks":["nope"]}}`
	rec := do(t, newTestRouter(Handlers{}, nil), http.MethodPost, "/v2/manifests", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decode[ErrorResponse](t, rec)
	require.Len(t, got.Violations, 1)
	assert.Equal(t, "manifest.overpacks[0]", got.Violations[0].Path)
}

func TestCreateManifest_RepeatedIdempotencyKey_Returns409(t *testing.T) {
	create := new(mockCommand[commands.CreateManifestCommand])
	get := new(mockResult[queries.GetManifestQuery, queries.ManifestView])
	create.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()
	get.On("Handle", mock.Anything, mock.Anything).Return(queries.ManifestView{EntryPoint: "LAX01", TotalOverpacks: 1}, nil).Once()

	store := &fakeIdempotencyStore{used: map[string]bool{}}
	router := newTestRouter(Handlers{CreateManifest: create, GetManifest: get}, store)
	body := `{"manifest":{"carrier":"DHL","overpacks":["` + kernel.NewUUID().String() + `"]}}`

	first := do(t, router, http.MethodPost, "/v2/manifests", body, HeaderIdempotencyKey, "k-1")
	second := do(t, router, http.MethodPost, "/v2/manifests", body, HeaderIdempotencyKey, "k-1")

	require.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, "LAX01", decode[ManifestResponse](t, first).Manifest.EntryPoint)
	assert.Equal(t, http.StatusConflict, second.Code)
	create.AssertNumberOfCalls(t, "Handle", 1)
}

func TestCreateManifest_FailedRequest_ReleasesIdempotencyKey(t *testing.T) {
	create := new(mockCommand[commands.CreateManifestCommand])
	create.On("Handle", mock.Anything, mock.Anything).Return(errs.NewObjectNotFoundError("overpack", "x")).Once()

	store := &fakeIdempotencyStore{used: map[string]bool{}}
	body := `{"manifest":{"overpacks":["` + kernel.NewUUID().String() + `"]}}`
	rec := do(t, newTestRouter(Handlers{CreateManifest: create}, store), http.MethodPost, "/v2/manifests", body, HeaderIdempotencyKey, "k-2")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{"k-2"}, store.released)
}

func TestUpdateOrder_UnknownStatusName_ReturnsStatusViolation(t *testing.T) {
	update := &editableHandler[commands.UpdateOrderCommand]{
		read: func(cmd commands.UpdateOrderCommand) error {
			_, err := cmd.Changes()
			return err
		},
	}

	body := `{"order":{"status":"Teleported"}}`
	rec := do(t, newTestRouter(Handlers{UpdateOrder: update}, nil), http.MethodPut, "/v2/orders/"+kernel.NewUUID().String(), body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decode[ErrorResponse](t, rec)
	require.Len(t, got.Violations, 1)
	assert.Equal(t, "status", got.Violations[0].Path)
	assert.Equal(t, order.MsgUserStatus, got.Violations[0].Message)
}

func TestUpdateOrder_Frozen_InvalidLineItem_ReportsStatusOnly(t *testing.T) {
	frozen := errs.NewValidationError("order", "x")
	frozen.Add("status", "Orders with the status of Packing or Fulfilled may not be updated.")
	update := new(mockCommand[commands.UpdateOrderCommand])
	update.On("Handle", mock.Anything, byOwner[commands.UpdateOrderCommand]()).Return(frozen).Once()

	body := `{"order":{"line_items":[{"product_id":"` + kernel.NewUUID().String() + `","quantity":-1}]}}`
	rec := do(t, newTestRouter(Handlers{UpdateOrder: update}, nil), http.MethodPut, "/v2/orders/"+kernel.NewUUID().String(), body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decode[ErrorResponse](t, rec)
	require.Len(t, got.Violations, 1)
	assert.Equal(t, "status", got.Violations[0].Path)
	update.AssertExpectations(t)
}

func TestPatchOrderStatuses_InvisibleOrderHasNullStatus(t *testing.T) {
	visible, hidden := kernel.NewUUID(), kernel.NewUUID()
	holding := order.Holding

	patch := new(mockResult[commands.PatchOrderStatusesCommand, []commands.OrderStatusResult])
	patch.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PatchOrderStatusesCommand) bool {
		return len(cmd.Entries()) == 2 && cmd.Entries()[0].Status == order.Holding
	})).Return([]commands.OrderStatusResult{
		{OrderID: visible, Status: &holding},
		{OrderID: hidden},
	}, nil).Once()

	body := `{"orders":[{"id":"` + visible.String() + `","status":"holding"},{"id":"` + hidden.String() + `","status":"Holding"}]}`
	rec := do(t, newTestRouter(Handlers{PatchOrderStatuses: patch}, nil), http.MethodPatch, "/v2/orders/status", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"orders":[{"id":"`+visible.String()+`","status":"Holding"},{"id":"`+hidden.String()+`","status":null}]}`,
		rec.Body.String())
}

func TestPatchOrderStatuses_EmptyList_Returns400(t *testing.T) {
	rec := do(t, newTestRouter(Handlers{}, nil), http.MethodPatch, "/v2/orders/status", `{"orders":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteOrder_NotDeletable_Returns403(t *testing.T) {
	del := new(mockCommand[commands.DeleteOrderCommand])
	del.On("Handle", mock.Anything, byOwner[commands.DeleteOrderCommand]()).
		Return(errs.NewStateConflictError("order", "x", "Only orders with status of Backordered, Exception, Holding, Processing, or Ready may be deleted.")).Once()

	rec := do(t, newTestRouter(Handlers{DeleteOrder: del}, nil), http.MethodDelete, "/v2/orders/"+kernel.NewUUID().String(), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUnexpectedError_Returns500WithoutDetails(t *testing.T) {
	get := new(mockResult[queries.GetOrderQuery, queries.OrderView])
	get.On("Handle", mock.Anything, mock.Anything).
		Return(queries.OrderView{}, errs.NewPersistenceError("get order", assert.AnError)).Once()

	rec := do(t, newTestRouter(Handlers{GetOrder: get}, nil), http.MethodGet, "/v2/orders/"+kernel.NewUUID().String(), "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error."}`, rec.Body.String())
}

func TestHealthAndMetrics_NoAuthRequired(t *testing.T) {
	router := newTestRouter(Handlers{}, nil)

	for _, path := range []string{"/health", "/health/ready", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestReadiness_FailingDependency_Returns503(t *testing.T) {
	router := NewRouter(RouterConfig{
		Server: NewServer(Handlers{}),
		Log:    zerolog.Nop(),
		Readiness: map[string]Pinger{
			"postgres": PingFunc(func(context.Context) error { return nil }),
			"redis":    PingFunc(func(context.Context) error { return assert.AnError }),
		},
	})
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	got := decode[readinessResponse](t, rec)
	assert.Equal(t, "ok", got.Dependencies["postgres"].Status)
	assert.Equal(t, "unhealthy", got.Dependencies["redis"].Status)
}
