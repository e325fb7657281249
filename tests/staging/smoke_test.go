//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

// smokeTokenID is high enough not to collide with real pets in a shared cache
const smokeTokenID = 900_000_001

type quoteResponse struct {
	TokenID uint64 `json:"token_id"`
	Cycles  uint64 `json:"cycles"`
	Error   string `json:"error"`
}

type planResponse struct {
	FeedTokenIDs []uint64 `json:"feed_token_ids"`
}

func uploadSmokePet(t *testing.T, feedingHours int) {
	t.Helper()

	// Fed two hours ago, so two cycles are owed if feedingHours >= 2
	fedAt := time.Now().Add(-2 * time.Hour).Unix()
	body := fmt.Sprintf(`[{"tokenId": "%d", "feedingHours": %d, "lastClaimTime": %d, "lastFeedTime": %d, "quality": 1, "isActive": true, "accumulatedCycles": "0x0"}]`,
		smokeTokenID, feedingHours, fedAt, fedAt)

	resp, respBody := makeRequest(t, http.MethodPut, "/api/v1/snapshots", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Snapshot upload failed with %d: %s", resp.StatusCode, respBody)
	}
}

func TestQuoteAfterUpload(t *testing.T) {
	uploadSmokePet(t, 24)

	resp, body := makeRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/pets/%d/quote", smokeTokenID), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var q quoteResponse
	if err := json.Unmarshal(body, &q); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if q.Error != "" {
		t.Errorf("Expected a clean quote, got error %q", q.Error)
	}
	if q.Cycles != 2 {
		t.Errorf("Expected 2 cycles, got %d", q.Cycles)
	}
}

func TestFeedPlanAfterUpload(t *testing.T) {
	uploadSmokePet(t, 4)

	body := fmt.Sprintf(`{"token_ids": [%d], "requested_hours": 1}`, smokeTokenID)
	resp, respBody := makeRequest(t, http.MethodPost, "/api/v1/feeding/plan", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, respBody)
	}

	var plan planResponse
	if err := json.Unmarshal(respBody, &plan); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(plan.FeedTokenIDs) != 1 || plan.FeedTokenIDs[0] != smokeTokenID {
		t.Errorf("Expected pet %d to be feedable, got %v", smokeTokenID, plan.FeedTokenIDs)
	}
}

func TestUnknownPet(t *testing.T) {
	resp, _ := makeRequest(t, http.MethodGet, "/api/v1/pets/999999999999/quote", "")

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}
