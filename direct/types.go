package direct

import "encoding/json"

// States and statuses used in selection criteria.
const (
	StateOn        = "ON"
	StatusAccepted = "ACCEPTED"
)

// Page sets the offset for fetching the next portion of a paginated result.
type Page struct {
	Offset int64 `json:"Offset"`
}

// Campaign is a campaign object as returned by the campaigns service.
// Monetary amounts are micros of the account currency.
type Campaign struct {
	ID           int64         `json:"Id"`
	Name         string        `json:"Name"`
	State        string        `json:"State,omitempty"`
	Status       string        `json:"Status,omitempty"`
	Type         string        `json:"Type,omitempty"`
	DailyBudget  *DailyBudget  `json:"DailyBudget,omitempty"`
	Funds        *Funds        `json:"Funds,omitempty"`
	Statistics   *Statistics   `json:"Statistics,omitempty"`
	TextCampaign *TextCampaign `json:"TextCampaign,omitempty"`
}

// DailyBudget is a campaign's daily spending limit.
type DailyBudget struct {
	Amount int64  `json:"Amount"`
	Mode   string `json:"Mode"`
}

// Funds describes how a campaign is funded.
type Funds struct {
	Mode               string              `json:"Mode"`
	CampaignFunds      *CampaignFunds      `json:"CampaignFunds,omitempty"`
	SharedAccountFunds *SharedAccountFunds `json:"SharedAccountFunds,omitempty"`
}

// CampaignFunds is the balance of an individually funded campaign.
type CampaignFunds struct {
	Sum                     int64 `json:"Sum"`
	Balance                 int64 `json:"Balance"`
	BalanceBonus            int64 `json:"BalanceBonus"`
	SumAvailableForTransfer int64 `json:"SumAvailableForTransfer"`
}

// SharedAccountFunds is the spending of a campaign on a shared account.
type SharedAccountFunds struct {
	Refund int64 `json:"Refund"`
	Spend  int64 `json:"Spend"`
}

// Statistics holds lifetime campaign counters.
type Statistics struct {
	Clicks      int64 `json:"Clicks"`
	Impressions int64 `json:"Impressions"`
}

// TextCampaign carries the text-campaign specific part of the schema.
// The nested structures are passed through untouched.
type TextCampaign struct {
	BiddingStrategy  json.RawMessage `json:"BiddingStrategy,omitempty"`
	Settings         json.RawMessage `json:"Settings,omitempty"`
	RelevantKeywords json.RawMessage `json:"RelevantKeywords,omitempty"`
}

// AdGroup is an ad group object as returned by the adgroups service.
type AdGroup struct {
	ID         int64  `json:"Id"`
	CampaignID int64  `json:"CampaignId"`
	Name       string `json:"Name"`
	Status     string `json:"Status,omitempty"`
	Type       string `json:"Type,omitempty"`
}

// Ad is an ad object as returned by the ads service.
type Ad struct {
	ID         int64  `json:"Id"`
	AdGroupID  int64  `json:"AdGroupId"`
	CampaignID int64  `json:"CampaignId"`
	State      string `json:"State,omitempty"`
	Status     string `json:"Status,omitempty"`
}

// Bid is a keyword bid object as returned by the bids service.
type Bid struct {
	CampaignID         int64         `json:"CampaignId"`
	AdGroupID          int64         `json:"AdGroupId,omitempty"`
	KeywordID          int64         `json:"KeywordId"`
	Bid                int64         `json:"Bid,omitempty"`
	ContextBid         int64         `json:"ContextBid,omitempty"`
	CompetitorsBids    []int64       `json:"CompetitorsBids,omitempty"`
	SearchPrices       []SearchPrice `json:"SearchPrices,omitempty"`
	MinSearchPrice     int64         `json:"MinSearchPrice,omitempty"`
	CurrentSearchPrice int64         `json:"CurrentSearchPrice,omitempty"`
}

// SearchPrice is a price for one search result position.
type SearchPrice struct {
	Position string `json:"Position"`
	Price    int64  `json:"Price"`
}

// BidSetItem is one bid assignment for SetBids. Exactly one of KeywordID,
// AdGroupID or CampaignID identifies the target.
type BidSetItem struct {
	KeywordID  int64 `json:"KeywordId,omitempty"`
	AdGroupID  int64 `json:"AdGroupId,omitempty"`
	CampaignID int64 `json:"CampaignId,omitempty"`
	Bid        int64 `json:"Bid,omitempty"`
	ContextBid int64 `json:"ContextBid,omitempty"`
}

// BidSetResult is the per-item outcome of a SetBids call.
type BidSetResult struct {
	KeywordID  int64          `json:"KeywordId,omitempty"`
	AdGroupID  int64          `json:"AdGroupId,omitempty"`
	CampaignID int64          `json:"CampaignId,omitempty"`
	Warnings   []Notification `json:"Warnings,omitempty"`
	Errors     []Notification `json:"Errors,omitempty"`
}

// Notification is a warning or error attached to a single result item.
type Notification struct {
	Code    int    `json:"Code"`
	Message string `json:"Message"`
	Details string `json:"Details,omitempty"`
}

// CampaignsGetParams are the params of a campaigns get call.
type CampaignsGetParams struct {
	SelectionCriteria      CampaignSelectionCriteria `json:"SelectionCriteria"`
	FieldNames             []string                  `json:"FieldNames"`
	TextCampaignFieldNames []string                  `json:"TextCampaignFieldNames,omitempty"`
	Page                   *Page                     `json:"Page,omitempty"`
}

// CampaignSelectionCriteria filters campaigns get calls. Empty criteria
// select every campaign of the account.
type CampaignSelectionCriteria struct {
	IDs []int64 `json:"Ids,omitempty"`
}

// AdGroupsGetParams are the params of an adgroups get call.
type AdGroupsGetParams struct {
	SelectionCriteria AdGroupSelectionCriteria `json:"SelectionCriteria"`
	FieldNames        []string                 `json:"FieldNames"`
	Page              *Page                    `json:"Page,omitempty"`
}

// AdGroupSelectionCriteria filters adgroups get calls.
type AdGroupSelectionCriteria struct {
	CampaignIDs []int64  `json:"CampaignIds,omitempty"`
	IDs         []int64  `json:"Ids,omitempty"`
	Statuses    []string `json:"Statuses,omitempty"`
}

// AdsGetParams are the params of an ads get call.
type AdsGetParams struct {
	SelectionCriteria AdSelectionCriteria `json:"SelectionCriteria"`
	FieldNames        []string            `json:"FieldNames"`
	Page              *Page               `json:"Page,omitempty"`
}

// AdSelectionCriteria filters ads get calls.
type AdSelectionCriteria struct {
	CampaignIDs []int64  `json:"CampaignIds,omitempty"`
	AdGroupIDs  []int64  `json:"AdGroupIds,omitempty"`
	States      []string `json:"States,omitempty"`
	Statuses    []string `json:"Statuses,omitempty"`
}

// BidsGetParams are the params of a bids get call.
type BidsGetParams struct {
	SelectionCriteria BidSelectionCriteria `json:"SelectionCriteria"`
	FieldNames        []string             `json:"FieldNames"`
	Page              *Page                `json:"Page,omitempty"`
}

// BidSelectionCriteria filters bids get calls.
type BidSelectionCriteria struct {
	CampaignIDs []int64 `json:"CampaignIds,omitempty"`
	AdGroupIDs  []int64 `json:"AdGroupIds,omitempty"`
	KeywordIDs  []int64 `json:"KeywordIds,omitempty"`
}

// BidsSetParams are the params of a bids set call.
type BidsSetParams struct {
	Bids []BidSetItem `json:"Bids"`
}

type campaignsGetResult struct {
	Campaigns []Campaign `json:"Campaigns"`
	LimitedBy int64      `json:"LimitedBy"`
}

type adGroupsGetResult struct {
	AdGroups  []AdGroup `json:"AdGroups"`
	LimitedBy int64     `json:"LimitedBy"`
}

type adsGetResult struct {
	Ads       []Ad  `json:"Ads"`
	LimitedBy int64 `json:"LimitedBy"`
}

type bidsGetResult struct {
	Bids      []Bid `json:"Bids"`
	LimitedBy int64 `json:"LimitedBy"`
}

type bidsSetResult struct {
	SetResults []BidSetResult `json:"SetResults"`
}
