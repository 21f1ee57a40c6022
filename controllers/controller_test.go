package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"flavor-fusion-server/database"
	"flavor-fusion-server/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want map[string]interface{}
	}{
		{"rejection", services.OwnFoodItem, map[string]interface{}{"message": "Own food item"}},
		{"wrapped rejection", fmt.Errorf("place: %w", services.LessItemAvailable), map[string]interface{}{"message": "Less item available"}},
		{"not found", fmt.Errorf("find: %w", database.ErrNotFound), map[string]interface{}{"message": "No data found"}},
		{"duplicate", fmt.Errorf("insert: %w", database.ErrDuplicate), map[string]interface{}{"message": "Already exists"}},
		{"fault", errors.New("connection reset"), map[string]interface{}{"error": true, "message": "connection reset"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			respond(c, tt.err)

			assert.Equal(t, 200, w.Code)
			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToFixed(t *testing.T) {
	assert.Equal(t, 9.0, toFixed(8.999, 2))
	assert.Equal(t, 12.35, toFixed(12.346, 2))
	assert.Equal(t, -1.5, toFixed(-1.499, 2))
}

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hashed)
	assert.Equal(t, "$2a$", hashed[:4])
}

func TestObjectID(t *testing.T) {
	_, err := objectID("nope")
	assert.EqualError(t, err, `invalid id "nope"`)

	id, err := objectID("64b7f0c2a1b2c3d4e5f60718")
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", id.Hex())
}
