package predictor

// Request is the payload sent to the prediction service's /predict endpoint.
// Field names follow the model service's JSON contract.
type Request struct {
	Age              float64 `json:"age"`
	BMI              float64 `json:"bmi"`
	Glucose          float64 `json:"glucose"`
	BloodPressure    float64 `json:"bloodPressure"`
	SystolicBP       float64 `json:"systolicBP"`
	DiastolicBP      float64 `json:"diastolicBP"`
	HbA1c            float64 `json:"hba1c,omitempty"`
	Insulin          float64 `json:"insulin"`
	SkinThickness    float64 `json:"skinThickness"`
	Pregnancies      float64 `json:"pregnancies"`
	FamilyHistory    float64 `json:"familyHistory"`
	FamilyHistoryFlg bool    `json:"familyHistoryFlag"`
	Gender           string  `json:"gender"`
	SmokingStatus    string  `json:"smokingStatus,omitempty"`
	Alcohol          string  `json:"alcoholConsumption,omitempty"`
	Exercise         string  `json:"exerciseFrequency,omitempty"`
	DiabetesStatus   string  `json:"diabetesStatus"`
}

// MetricInsight is a per-metric status annotation returned alongside a
// prediction: status is one of good, warning, critical.
type MetricInsight struct {
	Status     string `json:"status"`
	Label      string `json:"label"`
	ValueLabel string `json:"valueLabel"`
	Message    string `json:"message"`
}

// Probabilities carries the model's class probabilities as percentages.
type Probabilities struct {
	NoDiabetes float64 `json:"no_diabetes"`
	Diabetes   float64 `json:"diabetes"`
}

// Response is the prediction service's /predict response.
type Response struct {
	RiskScore         float64                  `json:"riskScore"`
	RiskCategory      string                   `json:"riskCategory"`
	ConfidenceScore   float64                  `json:"confidenceScore"`
	Prediction        int                      `json:"prediction"`
	Probabilities     Probabilities            `json:"probabilities"`
	FeatureImportance map[string]float64       `json:"featureImportance"`
	Recommendations   []string                 `json:"recommendations"`
	MetricInsights    map[string]MetricInsight `json:"metricInsights"`
}

// errorBody is the shape the model service uses for failures.
type errorBody struct {
	Error string `json:"error"`
}

// healthBody is the model service's /health response.
type healthBody struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}
