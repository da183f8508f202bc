package wizard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"andaman/internal/domain"
	"andaman/internal/vendorapp/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serviceStub records the create/update traffic the wizard generates.
type serviceStub struct {
	mu          sync.Mutex
	posts       int
	puts        int
	lastPayload map[string]any
	lastImages  string
	lastPutPath string

	failCreate bool
	failPut    bool
	nextID     int64
}

func newServiceStub() *serviceStub { return &serviceStub{nextID: 42} }

func (s *serviceStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodPost:
		s.posts++
		s.lastPayload = map[string]any{}
		json.NewDecoder(r.Body).Decode(&s.lastPayload)
		if s.failCreate {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"success":false,"error":{"code":"DUPLICATE_SERVICE","message":"You already have a service with this name"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": s.nextID},
			"message": "Service created",
		})
	case http.MethodPut:
		s.puts++
		s.lastPutPath = r.URL.Path
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		s.lastImages = body["images"]
		if s.failPut {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"error":{"code":"INTERNAL","message":"could not save images"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	default:
		http.NotFound(w, r)
	}
}

func newTestWizard(t *testing.T, vendorType string, stub *serviceStub) *Wizard {
	t.Helper()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	w, err := New(api.NewClient(srv.URL, "test-token"), &domain.VendorProfile{
		ID: 3, UserID: 7, BusinessName: "Havelock Dive Shop", Type: vendorType, Verified: 1,
	})
	require.NoError(t, err)
	return w
}

func rentalForm() Form {
	return Form{
		IslandID:          "2",
		Name:              "Scooter Rental",
		Description:       "Well maintained scooters near the jetty",
		Price:             "450",
		RentalUnit:        "per day",
		QuantityAvailable: "8",
		AvailabilityDays:  []string{"Mon", "Tue", "Wed"},
		AvailabilityNotes: "Closed on public holidays",
		GeneralAmenities:  []string{"Helmet included"},
	}
}

func TestNew_RejectsHotelVendors(t *testing.T) {
	for _, typ := range []string{"hotel", "hotel/resort"} {
		_, err := New(api.NewClient("http://unused", ""), &domain.VendorProfile{Type: typ})
		assert.ErrorIs(t, err, ErrHotelVendor, typ)
	}
	assert.Equal(t, "/my-hotels", HotelRedirect)
}

func TestValidate_OrderAndRules(t *testing.T) {
	w := newTestWizard(t, "rental", newServiceStub())

	cases := []struct {
		name   string
		mutate func(*Form)
		field  string
	}{
		{"missing island", func(f *Form) { f.IslandID = "" }, "island_id"},
		{"non-numeric island", func(f *Form) { f.IslandID = "havelock" }, "island_id"},
		{"missing name", func(f *Form) { f.Name = "  " }, "name"},
		{"empty price", func(f *Form) { f.Price = "" }, "price"},
		{"price not a number", func(f *Form) { f.Price = "four fifty" }, "price"},
		{"price zero", func(f *Form) { f.Price = "0" }, "price"},
		{"price negative", func(f *Form) { f.Price = "-10" }, "price"},
		{"price infinite", func(f *Form) { f.Price = "Inf" }, "price"},
		{"missing rental unit", func(f *Form) { f.RentalUnit = "" }, "rental_unit"},
		{"zero quantity", func(f *Form) { f.QuantityAvailable = "0" }, "quantity_available"},
		{"fractional quantity", func(f *Form) { f.QuantityAvailable = "2.5" }, "quantity_available"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := rentalForm()
			tc.mutate(&form)
			verr := w.Validate(form)
			require.NotNil(t, verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	t.Run("island must come before name", func(t *testing.T) {
		form := rentalForm()
		form.IslandID = ""
		form.Name = ""
		verr := w.Validate(form)
		require.NotNil(t, verr)
		assert.Equal(t, "island_id", verr.Field)
	})

	t.Run("smallest positive price passes", func(t *testing.T) {
		form := rentalForm()
		form.Price = "0.01"
		assert.Nil(t, w.Validate(form))
	})
}

func TestValidate_ActivityAndTransport(t *testing.T) {
	t.Run("activity needs duration", func(t *testing.T) {
		w := newTestWizard(t, "activity", newServiceStub())
		form := Form{IslandID: "1", Name: "Snorkel Trip", Price: "1200", DurationUnit: "hours"}
		verr := w.Validate(form)
		require.NotNil(t, verr)
		assert.Equal(t, "duration", verr.Field)

		form.Duration = "3"
		assert.Nil(t, w.Validate(form))
	})

	t.Run("transport subtype keeps transport rules", func(t *testing.T) {
		w := newTestWizard(t, "transport/car", newServiceStub())
		form := Form{IslandID: "1", Name: "Airport Pickup", Price: "800", VehicleType: "sedan"}
		verr := w.Validate(form)
		require.NotNil(t, verr)
		assert.Equal(t, "capacity_passengers", verr.Field)

		form.CapacityPassengers = "4"
		assert.Nil(t, w.Validate(form))
	})
}

func TestBuildPayload_PrunesOtherTypes(t *testing.T) {
	w := newTestWizard(t, "rental", newServiceStub())

	payload, err := w.BuildPayload(rentalForm())
	require.NoError(t, err)

	assert.Equal(t, "rental", payload["type"])
	assert.Equal(t, int64(2), payload["island_id"])
	assert.Equal(t, "Scooter Rental", payload["name"])
	assert.Equal(t, 450.0, payload["price"])
	assert.Equal(t, "per day", payload["rental_unit"])
	assert.Equal(t, 8, payload["quantity_available"])

	for _, absent := range []string{"duration", "duration_unit", "vehicle_type", "capacity_passengers", "equipment_provided"} {
		_, ok := payload[absent]
		assert.False(t, ok, "unexpected key %q in rental payload", absent)
	}

	raw, ok := payload["availability"].(string)
	require.True(t, ok, "availability must be a JSON-encoded string")
	var av domain.ServiceAvailability
	require.NoError(t, json.Unmarshal([]byte(raw), &av))
	assert.Equal(t, []string{"Mon", "Tue", "Wed"}, av.Days)
	assert.Equal(t, "Closed on public holidays", av.Notes)
}

func TestBuildPayload_OmitsEmptyOptionals(t *testing.T) {
	w := newTestWizard(t, "activity", newServiceStub())
	payload, err := w.BuildPayload(Form{
		IslandID: "1", Name: "Kayak Tour", Price: "900",
		Duration: "2", DurationUnit: "hours",
	})
	require.NoError(t, err)

	for _, absent := range []string{"description", "availability", "general_amenities", "equipment_provided"} {
		_, ok := payload[absent]
		assert.False(t, ok, "unexpected key %q", absent)
	}
}

func TestSubmitDetails_AssignsIDOnce(t *testing.T) {
	stub := newServiceStub()
	w := newTestWizard(t, "rental", stub)

	require.NoError(t, w.SubmitDetails(context.Background(), rentalForm()))
	assert.Equal(t, PhaseIDAssigned, w.Phase())
	assert.EqualValues(t, 42, w.ServiceID())
	assert.Equal(t, 1, stub.posts)

	err := w.SubmitDetails(context.Background(), rentalForm())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, 1, stub.posts, "a second submit must not POST again")
}

func TestSubmitDetails_FailureReturnsToDraft(t *testing.T) {
	stub := newServiceStub()
	stub.failCreate = true
	w := newTestWizard(t, "rental", stub)

	err := w.SubmitDetails(context.Background(), rentalForm())
	var subErr *DetailsSubmissionError
	require.ErrorAs(t, err, &subErr)
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "You already have a service with this name", apiErr.Message)

	assert.Equal(t, PhaseDraft, w.Phase())
	assert.Zero(t, w.ServiceID())
	assert.Equal(t, 1, stub.posts, "failures are retried by hand, never automatically")

	stub.failCreate = false
	require.NoError(t, w.SubmitDetails(context.Background(), rentalForm()))
	assert.Equal(t, 2, stub.posts)
}

func TestSubmitDetails_ValidationFailureSkipsRequest(t *testing.T) {
	stub := newServiceStub()
	w := newTestWizard(t, "rental", stub)

	form := rentalForm()
	form.Price = "-5"
	err := w.SubmitDetails(context.Background(), form)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)
	assert.Zero(t, stub.posts)
	assert.Equal(t, PhaseDraft, w.Phase())
}

func TestSubmitImages_RequiresAssignedID(t *testing.T) {
	stub := newServiceStub()
	w := newTestWizard(t, "rental", stub)

	err := w.SubmitImages(context.Background(), []string{"/uploads/a.jpg"})
	assert.ErrorIs(t, err, ErrNoServiceID)
	assert.Zero(t, stub.puts)
}

func TestSubmitImages_ZeroImagesCompletesWithoutPUT(t *testing.T) {
	stub := newServiceStub()
	w := newTestWizard(t, "rental", stub)
	require.NoError(t, w.SubmitDetails(context.Background(), rentalForm()))

	require.NoError(t, w.SubmitImages(context.Background(), nil))
	assert.Equal(t, PhaseComplete, w.Phase())
	assert.Zero(t, stub.puts)
}

func TestSubmitImages_SendsJSONEncodedArray(t *testing.T) {
	stub := newServiceStub()
	w := newTestWizard(t, "rental", stub)
	require.NoError(t, w.SubmitDetails(context.Background(), rentalForm()))

	urls := []string{"/uploads/2026/09/01/a.jpg", "/uploads/2026/09/01/b.jpg"}
	require.NoError(t, w.SubmitImages(context.Background(), urls))

	assert.Equal(t, PhaseComplete, w.Phase())
	assert.Equal(t, 1, stub.puts)
	assert.Equal(t, "/api/vendor/my-services/42", stub.lastPutPath, "the PUT must target the id from the POST")

	var decoded []string
	require.NoError(t, json.Unmarshal([]byte(stub.lastImages), &decoded))
	assert.Equal(t, urls, decoded)
}

func TestSubmitImages_FailureKeepsIDForRetry(t *testing.T) {
	stub := newServiceStub()
	stub.failPut = true
	w := newTestWizard(t, "rental", stub)
	require.NoError(t, w.SubmitDetails(context.Background(), rentalForm()))

	err := w.SubmitImages(context.Background(), []string{"/uploads/a.jpg"})
	var imgErr *ImageAssociationError
	require.ErrorAs(t, err, &imgErr)
	assert.EqualValues(t, 42, imgErr.ServiceID)

	assert.Equal(t, PhaseIDAssigned, w.Phase())
	assert.Equal(t, 1, stub.posts, "an image failure must never recreate the service")
	assert.Equal(t, 1, stub.puts)

	stub.failPut = false
	require.NoError(t, w.SubmitImages(context.Background(), []string{"/uploads/a.jpg"}))
	assert.Equal(t, PhaseComplete, w.Phase())
	assert.Equal(t, 1, stub.posts)
	assert.Equal(t, 2, stub.puts)
}

func TestSubmit_RunsBothPhases(t *testing.T) {
	stub := newServiceStub()
	w := newTestWizard(t, "rental", stub)

	form := rentalForm()
	form.ImageURLs = []string{"/uploads/a.jpg"}
	require.NoError(t, w.Submit(context.Background(), form))

	assert.Equal(t, PhaseComplete, w.Phase())
	assert.Equal(t, 1, stub.posts)
	assert.Equal(t, 1, stub.puts)
}
