package direct

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsBids(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bids", r.URL.Path)

		var req struct {
			Method string        `json:"method"`
			Params BidsGetParams `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "get", req.Method)
		assert.Equal(t, []int64{10, 11}, req.Params.SelectionCriteria.AdGroupIDs)
		assert.Contains(t, req.Params.FieldNames, "CurrentSearchPrice")

		json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{
				"Bids": []map[string]any{
					{"CampaignId": 77, "KeywordId": 500, "Bid": 1500000},
					{"CampaignId": 77, "KeywordId": 501, "Bid": 2500000},
				},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server, 2)
	bids, err := client.GroupsBids(context.Background(), []int64{10, 11})
	require.NoError(t, err)

	require.Len(t, bids, 2)
	assert.Equal(t, int64(1500000), bids[500].Bid)
	assert.Equal(t, int64(77), bids[501].CampaignID)
}

func TestGroupsBidsEmptyInput(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := newTestClient(t, server, 2)
	bids, err := client.GroupsBids(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, bids)
	assert.Zero(t, requests)
}

func TestGroupsBidsChunking(t *testing.T) {
	var (
		mu         sync.Mutex
		chunkSizes []int
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Params BidsGetParams `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		groups := req.Params.SelectionCriteria.AdGroupIDs
		mu.Lock()
		chunkSizes = append(chunkSizes, len(groups))
		mu.Unlock()

		// one bid per group, keyword id derived from the group id
		bids := make([]map[string]any, 0, len(groups))
		for _, groupID := range groups {
			bids = append(bids, map[string]any{
				"CampaignId": 77,
				"KeywordId":  groupID * 10,
				"Bid":        1000000,
			})
		}
		json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{"Bids": bids},
		})
	}))
	defer server.Close()

	groupIDs := make([]int64, 25000)
	for i := range groupIDs {
		groupIDs[i] = int64(i + 1)
	}

	client := newTestClient(t, server, 4)
	bids, err := client.GroupsBids(context.Background(), groupIDs)
	require.NoError(t, err)

	assert.Len(t, bids, 25000)
	assert.ElementsMatch(t, []int{10000, 10000, 5000}, chunkSizes)
}

func TestGroupsBidsChunkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Params BidsGetParams `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		groups := req.Params.SelectionCriteria.AdGroupIDs
		require.NotEmpty(t, groups)

		// fail the middle chunk, answer the others normally
		if groups[0] == 10001 {
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"error_code": 152, "error_string": "Not enough units"},
			})
			return
		}

		bids := make([]map[string]any, 0, len(groups))
		for _, groupID := range groups {
			bids = append(bids, map[string]any{
				"CampaignId": 77,
				"KeywordId":  groupID * 10,
				"Bid":        1000000,
			})
		}
		json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{"Bids": bids},
		})
	}))
	defer server.Close()

	groupIDs := make([]int64, 25000)
	for i := range groupIDs {
		groupIDs[i] = int64(i + 1)
	}

	client := newTestClient(t, server, 4)
	bids, err := client.GroupsBids(context.Background(), groupIDs)
	require.Error(t, err)
	assert.Nil(t, bids)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsUnitsExhausted())
}

func TestCampaignsBidsCampaignFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Params json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch r.URL.Path {
		case "/ads":
			var params AdsGetParams
			require.NoError(t, json.Unmarshal(req.Params, &params))
			require.Len(t, params.SelectionCriteria.CampaignIDs, 1)
			campaignID := params.SelectionCriteria.CampaignIDs[0]

			// one campaign fails, the other answers normally
			if campaignID == 8 {
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"error_code": 54, "error_string": "No rights"},
				})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"result": map[string]any{
					"Ads": []map[string]any{
						{"Id": 1, "AdGroupId": campaignID * 10, "CampaignId": campaignID},
					},
				},
			})
		case "/bids":
			json.NewEncoder(w).Encode(map[string]any{
				"result": map[string]any{
					"Bids": []map[string]any{{"CampaignId": 7, "KeywordId": 7000, "Bid": 500}},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server, 3)
	bids, err := client.CampaignsBids(context.Background(), []int64{7, 8})
	require.Error(t, err)
	assert.Nil(t, bids)
	assert.Contains(t, err.Error(), "campaign 8")
}

func TestCampaignBidsPagination(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		var req struct {
			Params BidsGetParams `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []int64{77}, req.Params.SelectionCriteria.CampaignIDs)

		if requests == 1 {
			assert.Nil(t, req.Params.Page)
			json.NewEncoder(w).Encode(map[string]any{
				"result": map[string]any{
					"Bids":      []map[string]any{{"CampaignId": 77, "KeywordId": 500, "Bid": 100}},
					"LimitedBy": 10000,
				},
			})
			return
		}

		require.NotNil(t, req.Params.Page)
		assert.Equal(t, int64(10000), req.Params.Page.Offset)
		json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{
				"Bids": []map[string]any{{"CampaignId": 77, "KeywordId": 501, "Bid": 200}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server, 1)
	bids, err := client.CampaignBids(context.Background(), 77)
	require.NoError(t, err)

	assert.Equal(t, 2, requests)
	require.Len(t, bids, 2)
	assert.Equal(t, int64(200), bids[501].Bid)
}

func TestCampaignActiveBids(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ads":
			json.NewEncoder(w).Encode(map[string]any{
				"result": map[string]any{
					"Ads": []map[string]any{{"Id": 1, "AdGroupId": 10, "CampaignId": 77}},
				},
			})
		case "/bids":
			var req struct {
				Params BidsGetParams `json:"params"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []int64{10}, req.Params.SelectionCriteria.AdGroupIDs)

			json.NewEncoder(w).Encode(map[string]any{
				"result": map[string]any{
					"Bids": []map[string]any{{"CampaignId": 77, "KeywordId": 500, "Bid": 300}},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server, 2)
	bids, err := client.CampaignActiveBids(context.Background(), 77)
	require.NoError(t, err)

	require.Len(t, bids, 1)
	assert.Equal(t, int64(300), bids[500].Bid)
}

func TestCampaignActiveBidsNoActiveGroups(t *testing.T) {
	var bidRequests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bids" {
			bidRequests++
		}
		json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{"Ads": []map[string]any{}},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server, 2)
	bids, err := client.CampaignActiveBids(context.Background(), 77)
	require.NoError(t, err)
	assert.Empty(t, bids)
	assert.Zero(t, bidRequests)
}

func TestCampaignsBids(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Params json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch r.URL.Path {
		case "/ads":
			var params AdsGetParams
			require.NoError(t, json.Unmarshal(req.Params, &params))
			require.Len(t, params.SelectionCriteria.CampaignIDs, 1)
			campaignID := params.SelectionCriteria.CampaignIDs[0]

			json.NewEncoder(w).Encode(map[string]any{
				"result": map[string]any{
					"Ads": []map[string]any{
						{"Id": campaignID + 1, "AdGroupId": campaignID * 10, "CampaignId": campaignID},
					},
				},
			})
		case "/bids":
			var params BidsGetParams
			require.NoError(t, json.Unmarshal(req.Params, &params))
			require.Len(t, params.SelectionCriteria.AdGroupIDs, 1)
			groupID := params.SelectionCriteria.AdGroupIDs[0]

			json.NewEncoder(w).Encode(map[string]any{
				"result": map[string]any{
					"Bids": []map[string]any{
						{"CampaignId": groupID / 10, "KeywordId": groupID * 100, "Bid": 500},
					},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server, 3)
	bids, err := client.CampaignsBids(context.Background(), []int64{7, 8})
	require.NoError(t, err)

	require.Len(t, bids, 2)
	assert.Equal(t, int64(7), bids[7000].CampaignID)
	assert.Equal(t, int64(8), bids[8000].CampaignID)
}

func TestSetBids(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string        `json:"method"`
			Params BidsSetParams `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "set", req.Method)

		results := make([]map[string]any, 0, len(req.Params.Bids))
		for _, bid := range req.Params.Bids {
			results = append(results, map[string]any{"KeywordId": bid.KeywordID})
		}
		json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{"SetResults": results},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server, 1)
	count, err := client.SetBids(context.Background(), []BidSetItem{
		{KeywordID: 500, Bid: 1500000},
		{KeywordID: 501, Bid: 2000000},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSetBidsChunking(t *testing.T) {
	var chunkSizes []int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Params BidsSetParams `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		chunkSizes = append(chunkSizes, len(req.Params.Bids))

		results := make([]map[string]any, len(req.Params.Bids))
		for i, bid := range req.Params.Bids {
			results[i] = map[string]any{"KeywordId": bid.KeywordID}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{"SetResults": results},
		})
	}))
	defer server.Close()

	bids := make([]BidSetItem, 15000)
	for i := range bids {
		bids[i] = BidSetItem{KeywordID: int64(i + 1), Bid: 1000000}
	}

	client := newTestClient(t, server, 1)
	count, err := client.SetBids(context.Background(), bids)
	require.NoError(t, err)

	assert.Equal(t, 15000, count)
	assert.Equal(t, []int{10000, 5000}, chunkSizes)
}

func TestSetBidsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"error_code": 152, "error_string": "Not enough units"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server, 1)
	count, err := client.SetBids(context.Background(), []BidSetItem{{KeywordID: 500, Bid: 100}})
	require.Error(t, err)
	assert.Zero(t, count)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsUnitsExhausted())
}
