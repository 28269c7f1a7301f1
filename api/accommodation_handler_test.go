package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	ac "github.com/lagunacove/resort-booking-backend/accommodation"
	"github.com/lagunacove/resort-booking-backend/api"
	mock_api "github.com/lagunacove/resort-booking-backend/api/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAccommodationRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockAccommodationService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockAccommodationService(ctrl)
	handler := api.NewAccommodationHandler(mockService)
	handler.Register(router.Group("/api/v1/accommodations"))

	return router, ctrl, mockService
}

func TestListAccommodations(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupAccommodationRouter(t)
		defer ctrl.Finish()

		accommodations := []ac.Accommodation{
			{ID: "1", Name: "Seaview Deluxe", Type: ac.TypeRoom, Capacity: 2, PricePerNight: 180, Active: true},
			{ID: "2", Name: "Infinity Pool", Type: ac.TypePool, Capacity: 30, PricePerNight: 25, Active: true},
		}
		accommodationsJson, _ := json.MarshalIndent(accommodations, "", "    ")
		mockService.EXPECT().GetAccommodations(gomock.Any()).Return(accommodations, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/accommodations", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(accommodationsJson), w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mockService := setupAccommodationRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().GetAccommodations(gomock.Any()).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/accommodations", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to retrieve accommodations"}`, w.Body.String())
	})
}

func TestGetAccommodationByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupAccommodationRouter(t)
		defer ctrl.Finish()

		a := ac.Accommodation{ID: "1", Name: "Seaview Deluxe", Type: ac.TypeRoom, Active: true}
		aJson, _ := json.MarshalIndent(a, "", "    ")
		mockService.EXPECT().FindAccommodationByID(gomock.Any(), "1").Return(a, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/accommodations/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(aJson), w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupAccommodationRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindAccommodationByID(gomock.Any(), "missing").Return(ac.Accommodation{}, ac.ErrAccommodationNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/accommodations/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"accommodation not found"}`, w.Body.String())
	})
}

func TestCreateAccommodationEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, ctrl, mockService := setupAccommodationRouter(t)
		defer ctrl.Finish()

		inserted := ac.Accommodation{ID: "3", Name: "Garden Villa", Type: ac.TypeRoom, Capacity: 4, PricePerNight: 320, Active: true}
		insertedJson, _ := json.Marshal(inserted)
		mockService.EXPECT().CreateAccommodation(gomock.Any(), gomock.Any()).Return(inserted, nil).Times(1)

		body := []byte(`{"name":"Garden Villa","type":"room","capacity":4,"pricePerNight":320}`)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/accommodations", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(insertedJson), w.Body.String())
	})

	t.Run("invalid type", func(t *testing.T) {
		router, ctrl, mockService := setupAccommodationRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CreateAccommodation(gomock.Any(), gomock.Any()).Return(ac.Accommodation{}, ac.ErrInvalidType).Times(1)

		body := []byte(`{"name":"Spa","type":"spa"}`)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/accommodations", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid accommodation type"}`, w.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		router, ctrl, _ := setupAccommodationRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/accommodations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})
}

func TestModifyAccommodationEndpoint(t *testing.T) {
	body := []byte(`{"name":"Seaview Suite","type":"room","capacity":3,"pricePerNight":220}`)

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupAccommodationRouter(t)
		defer ctrl.Finish()

		expected := ac.Accommodation{ID: "1", Name: "Seaview Suite", Type: ac.TypeRoom, Capacity: 3, PricePerNight: 220}
		mockService.EXPECT().ModifyAccommodation(gomock.Any(), expected).Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/accommodations/1", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"accommodation modified"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupAccommodationRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().ModifyAccommodation(gomock.Any(), gomock.Any()).Return(ac.ErrAccommodationNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/accommodations/missing", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"accommodation not found"}`, w.Body.String())
	})
}

func TestRetireAccommodationEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupAccommodationRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().RetireAccommodation(gomock.Any(), "1").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/accommodations/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"accommodation retired"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupAccommodationRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().RetireAccommodation(gomock.Any(), "missing").Return(ac.ErrAccommodationNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/accommodations/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"accommodation not found"}`, w.Body.String())
	})
}
