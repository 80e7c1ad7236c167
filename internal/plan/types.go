// Package plan holds the structured plan model, the tolerant parser for
// model responses, the fixed-template renderer and the generation
// pipeline with its fallback tiers.
package plan

// Kind selects which plan variant a request is about.
type Kind string

const (
	KindWorkout   Kind = "workout"
	KindNutrition Kind = "nutrition"
)

// WorkoutPlan is the structured representation of a training plan as
// decoded from the model response.
type WorkoutPlan struct {
	Frequency string       `json:"frequency"`
	Division  string       `json:"division"`
	Days      []WorkoutDay `json:"days"`
}

type WorkoutDay struct {
	Title     string         `json:"title"`
	Warmup    []WarmupItem   `json:"warmup"`
	Exercises []ExerciseItem `json:"exercises"`
	Cooldown  []CooldownItem `json:"cooldown"`
}

type WarmupItem struct {
	Exercise string `json:"exercise"`
	Duration string `json:"duration"`
}

type ExerciseItem struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
	Rest string `json:"rest"`
}

type CooldownItem struct {
	Muscle       string `json:"muscle"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions,omitempty"`
}

// NutritionPlan is the structured representation of a meal plan. The six
// meal slots are fixed; each carries its own calorie subtotal.
type NutritionPlan struct {
	Calories      int            `json:"calories"`
	ProteinG      int            `json:"protein_g"`
	CarbsG        int            `json:"carbs_g"`
	FatsG         int            `json:"fats_g"`
	Meals         Meals          `json:"meals"`
	ShoppingList  []ShoppingItem `json:"shopping_list"`
	TotalCost     float64        `json:"total_cost"`
	Substitutions []Substitution `json:"substitutions"`
}

type Meals struct {
	Breakfast      MealSlot `json:"breakfast"`
	MorningSnack   MealSlot `json:"morning_snack"`
	Lunch          MealSlot `json:"lunch"`
	AfternoonSnack MealSlot `json:"afternoon_snack"`
	Dinner         MealSlot `json:"dinner"`
	Supper         MealSlot `json:"supper"`
}

type MealSlot struct {
	Items    []FoodItem `json:"items"`
	Calories int        `json:"calories"`
}

type FoodItem struct {
	Food     string `json:"food"`
	Quantity string `json:"quantity"`
	Details  string `json:"details,omitempty"`
}

type ShoppingItem struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

type Substitution struct {
	Original    string `json:"original"`
	Alternative string `json:"alternative"`
}
