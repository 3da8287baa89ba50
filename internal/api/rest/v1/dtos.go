package v1

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body of logout, deletes and profile updates.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is the JSON body of a successful register or login.
type AuthResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// RegisterRequest carries the register payload. couple_id joins an existing
// couple; when absent a new couple named couple_name is created.
type RegisterRequest struct {
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	AvatarURL   string   `json:"avatar_url"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	About       []string `json:"about"`
	CoupleID    string   `json:"couple_id"`
	CoupleName  string   `json:"couple_name"`
}

// LoginRequest carries the login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CoupleResponse is one entry of the couple listing.
type CoupleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProfileResponse is the caller's own profile. Skills and About are always
// arrays, never null.
type ProfileResponse struct {
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	AvatarURL   string   `json:"avatar_url"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	About       []string `json:"about"`
}

// ProfileUpdateRequest carries a partial profile update. Absent fields,
// including the list fields, leave the stored value untouched.
type ProfileUpdateRequest struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	AvatarURL   *string  `json:"avatar_url"`
	Description *string  `json:"description"`
	Skills      []string `json:"skills"`
	About       []string `json:"about"`
}

// TodoCreateRequest carries the todo create payload.
type TodoCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TodoUpdateRequest carries a partial todo update.
type TodoUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TodoResponse is the representation returned by create and update.
type TodoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TodoListResponse is one entry of the todo listing.
type TodoListResponse struct {
	TodoResponse
	CreatedByName string `json:"created_by_name"`
}

// WishCreateRequest carries the wishlist create payload.
type WishCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// WishUpdateRequest carries a partial wishlist update.
type WishUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Completed   *bool   `json:"completed"`
}

// WishResponse is the representation returned by create and update.
type WishResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
}

// WishListResponse is one entry of the wishlist listing.
type WishListResponse struct {
	WishResponse
	CreatedByName string `json:"created_by_name"`
}

// MenuCreateRequest carries the menu create payload.
type MenuCreateRequest struct {
	DishID    string `json:"dish_id"`
	DayOfWeek string `json:"day_of_week"`
	MealType  string `json:"meal_type"`
}

// MenuUpdateRequest carries a partial menu update over the stored fields.
type MenuUpdateRequest struct {
	DishID    *string `json:"dish_id"`
	DayOfWeek *string `json:"day_of_week"`
	MealType  *string `json:"meal_type"`
}

// MenuResponse is the representation returned by create and update.
type MenuResponse struct {
	ID        string `json:"id"`
	DishID    string `json:"dish_id"`
	DayOfWeek string `json:"day_of_week"`
	MealType  string `json:"meal_type"`
}

// MenuListResponse is one entry of the menu listing.
type MenuListResponse struct {
	MenuResponse
	CreatedByName string `json:"created_by_name"`
}

// DishCreateRequest carries the dish create payload.
type DishCreateRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	ImageURL  string `json:"image_url"`
	RecipeURL string `json:"recipe_url"`
}

// DishResponse is one dish of the global catalog.
type DishResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	ImageURL  string `json:"image_url"`
	RecipeURL string `json:"recipe_url"`
}
