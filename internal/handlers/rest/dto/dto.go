// Package dto holds the JSON request and response bodies of the REST API.
package dto

import "time"

type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type SignUpRequest struct {
	FullName        string `json:"full_name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	DateOfBirth     string `json:"date_of_birth"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ProfileUpdateRequest struct {
	FullName        *string `json:"full_name,omitempty"`
	Username        *string `json:"username,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Password        *string `json:"password,omitempty"`
	ConfirmPassword *string `json:"confirm_password,omitempty"`
}

type RunnerProfile struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"user_id"`
	DateOfBirth     string `json:"date_of_birth"`
	Address         string `json:"address"`
	IDNumber        string `json:"id_number"`
	VehicleType     string `json:"vehicle_type"`
	City            string `json:"city"`
	PreferredRoutes string `json:"preferred_routes,omitempty"`
	LicensePhoto    string `json:"license_photo,omitempty"`
	IDPhoto         string `json:"id_photo,omitempty"`
}

type RunnerListing struct {
	User             User          `json:"user"`
	Profile          RunnerProfile `json:"profile"`
	TotalErrands     int64         `json:"total_errands"`
	CompletedErrands int64         `json:"completed_errands"`
	AverageRating    float64       `json:"average_rating"`
}

type Errand struct {
	ID                   int64    `json:"id"`
	ClientID             int64    `json:"client_id"`
	Category             string   `json:"category"`
	PickupLocation       string   `json:"pickup_location"`
	DeliveryLocation     string   `json:"delivery_location,omitempty"`
	Weight               string   `json:"weight,omitempty"`
	DeliveryTime         string   `json:"delivery_time,omitempty"`
	Details              string   `json:"details,omitempty"`
	PriceEstimate        float64  `json:"price_estimate"`
	AgreedPrice          *float64 `json:"agreed_price,omitempty"`
	CalculatedMinimumFee *float64 `json:"calculated_minimum_fee,omitempty"`
	Status               string   `json:"status"`
	CreatedAt            string   `json:"created_at"`
}

type ErrandCreateRequest struct {
	Category         string `json:"category"`
	PickupLocation   string `json:"pickup_location"`
	DeliveryLocation string `json:"delivery_location"`
	Weight           string `json:"weight"`
	DeliveryTime     string `json:"delivery_time"`
	Details          string `json:"details"`

	// Category-specific pricing inputs; only the relevant ones are read.
	ItemCount        int      `json:"item_count,omitempty"`
	BudgetLimit      *float64 `json:"budget_limit,omitempty"`
	DriverTip        float64  `json:"driver_tip,omitempty"`
	TotalAmount      float64  `json:"total_amount,omitempty"`
	WeightValue      *float64 `json:"weight_value,omitempty"`
	Timeframe        string   `json:"timeframe,omitempty"`
	Fragility        string   `json:"fragility,omitempty"`
	ServiceType      string   `json:"service_type,omitempty"`
	BudgetRange      string   `json:"budget_range,omitempty"`
	TotalValue       *float64 `json:"total_value,omitempty"`
	TicketCount      int      `json:"ticket_count,omitempty"`
	PartCount        int      `json:"part_count,omitempty"`
	FuelType         string   `json:"fuel_type,omitempty"`
	FuelQuantity     float64  `json:"fuel_quantity,omitempty"`
	ItemsTotalValue  float64  `json:"items_total_value,omitempty"`
	PropertyType     string   `json:"property_type,omitempty"`
	AssemblyRequired bool     `json:"assembly_required,omitempty"`
	LuggageSize      string   `json:"luggage_size,omitempty"`
	Urgency          string   `json:"urgency,omitempty"`

	// Optional inputs for the minimum fee floor.
	PickupLat   *float64 `json:"pickup_lat,omitempty"`
	PickupLon   *float64 `json:"pickup_lon,omitempty"`
	DeliveryLat *float64 `json:"delivery_lat,omitempty"`
	DeliveryLon *float64 `json:"delivery_lon,omitempty"`
	WeightKg    float64  `json:"weight_kg,omitempty"`
	VehicleType *string  `json:"vehicle_type,omitempty"`
}

type ErrandStatusCounts struct {
	Pending   int64 `json:"pending"`
	Ongoing   int64 `json:"ongoing"`
	Completed int64 `json:"completed"`
}

type ErrandsResponse struct {
	Errands []Errand           `json:"errands"`
	Counts  ErrandStatusCounts `json:"counts"`
}

type AvailableErrand struct {
	Errand      Errand  `json:"errand"`
	Client      User    `json:"client"`
	HasOffered  bool    `json:"has_offered"`
	OfferStatus *string `json:"offer_status,omitempty"`
}

type Negotiation struct {
	ID         int64   `json:"id"`
	ErrandID   int64   `json:"errand_id"`
	RunnerID   int64   `json:"runner_id"`
	OfferPrice float64 `json:"offer_price"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

type OfferCreateRequest struct {
	ErrandID   int64   `json:"errand_id"`
	OfferPrice float64 `json:"offer_price"`
}

type DirectAcceptRequest struct {
	OfferPrice *float64 `json:"offer_price,omitempty"`
}

type Assignment struct {
	ErrandID       int64   `json:"errand_id"`
	RunnerID       int64   `json:"runner_id"`
	ActiveErrandID int64   `json:"active_errand_id"`
	AgreedPrice    float64 `json:"agreed_price"`
	StartTime      string  `json:"start_time"`
}

type Message struct {
	ID        int64  `json:"id"`
	ChatID    int64  `json:"chat_id"`
	SenderID  int64  `json:"sender_id"`
	Content   string `json:"content"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type ChatThread struct {
	ChatID   int64     `json:"chat_id"`
	ErrandID int64     `json:"errand_id"`
	ClientID int64     `json:"client_id"`
	RunnerID int64     `json:"runner_id"`
	Messages []Message `json:"messages"`
}

type MessageCreateRequest struct {
	Content string `json:"content"`
}

type RatingCreateRequest struct {
	ErrandID int64  `json:"errand_id"`
	Stars    int    `json:"stars"`
	Comment  string `json:"comment"`
}

type Rating struct {
	ID         int64  `json:"id"`
	ErrandID   int64  `json:"errand_id"`
	FromUserID int64  `json:"from_user_id"`
	ToUserID   int64  `json:"to_user_id"`
	Stars      int    `json:"stars"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type UserRatings struct {
	Ratings []Rating `json:"ratings"`
	Average float64  `json:"average"`
	Count   int64    `json:"count"`
}

type Notification struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type FeedbackCreateRequest struct {
	Stars             int    `json:"stars"`
	FeedbackType      string `json:"feedback_type"`
	Feedback          string `json:"feedback"`
	Suggestions       string `json:"suggestions,omitempty"`
	ContactPermission bool   `json:"contact_permission,omitempty"`
}

type FeedbackCreateResponse struct {
	ID int64 `json:"id"`
}

type FeedbackSummary struct {
	AverageStars float64         `json:"average_stars"`
	TotalCount   int64           `json:"total_count"`
	Distribution map[int]float64 `json:"distribution"`
}

type EarningsBucket struct {
	PeriodStart string  `json:"period_start"`
	Amount      float64 `json:"amount"`
}

type Wallet struct {
	Available float64 `json:"available"`
	Pending   float64 `json:"pending"`
}

type CompletedErrandRecord struct {
	Errand   Errand  `json:"errand"`
	Earnings float64 `json:"earnings"`
	EndTime  string  `json:"end_time"`
}

type RunnerDashboard struct {
	TotalEarnings   float64                 `json:"total_earnings"`
	TodayEarnings   float64                 `json:"today_earnings"`
	CompletedCount  int64                   `json:"completed_count"`
	AverageRating   float64                 `json:"average_rating"`
	WeeklyEarnings  []EarningsBucket        `json:"weekly_earnings"`
	MonthlyEarnings []EarningsBucket        `json:"monthly_earnings"`
	Wallet          Wallet                  `json:"wallet"`
	History         []CompletedErrandRecord `json:"history"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

// TimeRFC3339 renders timestamps uniformly across responses.
func TimeRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
