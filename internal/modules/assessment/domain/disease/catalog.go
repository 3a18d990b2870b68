package disease

import "strconv"

func bound(v float64) *float64 {
	return &v
}

func ranged(name, label, unit string, kind Kind, min, max float64, msg string) Field {
	step := "any"
	if kind == Integer {
		step = "1"
	}
	return Field{Name: name, Label: label, Unit: unit, Kind: kind, Min: bound(min), Max: bound(max), Step: step, Message: msg}
}

func measurement(name, label, unit, msg string) Field {
	return Field{Name: name, Label: label, Unit: unit, Kind: Number, Step: "any", Message: msg}
}

func choice(name, label string, def int, options ...Option) Field {
	return Field{Name: name, Label: label, Kind: Integer, Default: strconv.Itoa(def), Options: options}
}

func numberedChoice(name, label string, def int, options ...Option) Field {
	f := choice(name, label, def, options...)
	f.Kind = Number
	return f
}

func yesNo(name, label string) Field {
	return choice(name, label, 0, Option{0, "No"}, Option{1, "Yes"})
}

func constant(name string, v int) Field {
	return Field{Name: name, Label: name, Kind: Integer, Default: strconv.Itoa(v), Hidden: true}
}

func seq(labels ...string) []Option {
	out := make([]Option, len(labels))
	for i, l := range labels {
		out[i] = Option{Value: i, Label: l}
	}
	return out
}

func scale(from int, labels ...string) []Option {
	out := make([]Option, len(labels))
	for i, l := range labels {
		out[i] = Option{Value: from + i, Label: l}
	}
	return out
}

var ageField = ranged("age", "Age", "years", Number, 1, 120, "Please enter a valid age between 1 and 120")

var (
	maleFirst   = seq("Male", "Female")
	femaleFirst = seq("Female", "Male")
	absentFirst = seq("Not Present", "Present")
	normalFirst = seq("Normal", "Abnormal")
)

var diabetes = &Disease{
	Slug:        "diabetes",
	Name:        "Diabetes",
	PageTitle:   "Diabetes Risk Assessment",
	CardTitle:   "Diabetes Prediction",
	Description: "Predict your risk of diabetes based on health metrics and lifestyle factors.",
	Content:     "Our model analyzes glucose levels, BMI, blood pressure, and other factors to assess your diabetes risk.",
	Fields: []Field{
		choice("gender", "Gender", 0, maleFirst...),
		ageField,
		yesNo("hypertension", "Hypertension"),
		yesNo("heart_disease", "Heart Disease"),
		choice("smoking_history", "Smoking History", 0, seq("Never Smoked", "Current Smoker", "Former Smoker", "No Information")...),
		ranged("bmi", "BMI", "kg/m²", Number, 10, 50, "Please enter a valid BMI between 10 and 50"),
		ranged("HbA1c_level", "HbA1c Level", "%", Number, 3, 15, "Please enter a valid HbA1c level between 3 and 15"),
		ranged("blood_glucose_level", "Blood Glucose Level", "mg/dL", Integer, 50, 400, "Please enter a valid blood glucose level between 50 and 400"),
	},
}

var heart = &Disease{
	Slug:        "heart",
	Name:        "Heart Disease",
	PageTitle:   "Heart Disease Risk Assessment",
	CardTitle:   "Heart Disease Prediction",
	Description: "Evaluate your cardiovascular health and potential heart disease risks.",
	Content:     "Using cholesterol levels, blood pressure, age, and lifestyle factors to assess heart health risks.",
	Fields: []Field{
		ranged("age", "Age", "years", Integer, 1, 120, "Please enter a valid age between 1 and 120"),
		choice("gender", "Gender", 0, femaleFirst...),
		choice("chestpain", "Chest Pain Type", 0, seq("Typical Angina", "Atypical Angina", "Non-anginal Pain", "Asymptomatic")...),
		ranged("restingbp", "Resting Blood Pressure", "mm Hg", Integer, 94, 200, "Please enter a valid resting blood pressure between 94 and 200 mm Hg"),
		ranged("serumcholesterol", "Serum Cholesterol", "mg/dL", Integer, 126, 564, "Please enter a valid serum cholesterol between 126 and 564 mg/dL"),
		choice("fastingbloodsugar", "Fasting Blood Sugar > 120 mg/dL", 0, seq("False", "True")...),
		choice("restingrelectro", "Resting ECG Results", 0, seq("Normal", "ST-T Abnormality", "Left Ventricular Hypertrophy")...),
		ranged("maxheartrate", "Maximum Heart Rate Achieved", "bpm", Integer, 71, 202, "Please enter a valid maximum heart rate between 71 and 202"),
		yesNo("exerciseangia", "Exercise Induced Angina"),
		ranged("oldpeak", "ST Depression (Oldpeak)", "", Number, 0, 6.2, "Please enter a valid ST depression (oldpeak) between 0 and 6.2"),
		choice("slope", "Slope of ST Segment", 1, scale(1, "Upsloping", "Flat", "Downsloping")...),
		choice("noofmajorvessels", "Number of Major Vessels Colored", 0, seq("0", "1", "2", "3")...),
	},
}

var depression = &Disease{
	Slug:        "depression",
	Name:        "Depression",
	PageTitle:   "Depression Risk Assessment",
	CardTitle:   "Student Depression Detection",
	Description: "Early detection of depression symptoms for students under academic pressure.",
	Content:     "Our assessment tool helps identify early signs of depression in students to provide timely support.",
	Fields: []Field{
		choice("gender", "Gender", 0, femaleFirst...),
		ageField,
		constant("city", 0),
		numberedChoice("academic_pressure", "Academic Pressure", 3, scale(1, "1 (Very Low)", "2 (Low)", "3 (Moderate)", "4 (High)", "5 (Very High)")...),
		ranged("cgpa", "CGPA", "", Number, 0, 10, "Please enter a valid CGPA between 0 and 10"),
		numberedChoice("study_satisfaction", "Study Satisfaction", 3, scale(1, "1 (Very Dissatisfied)", "2 (Dissatisfied)", "3 (Neutral)", "4 (Satisfied)", "5 (Very Satisfied)")...),
		choice("sleep_duration", "Sleep Duration", 2, seq("Less than 5 hours", "5-6 hours", "7-8 hours", "More than 8 hours", "Others")...),
		choice("dietary_habits", "Dietary Habits", 1, seq("Unhealthy", "Moderate", "Healthy", "Others")...),
		yesNo("suicidal_thoughts", "Have you ever had suicidal thoughts?"),
		ranged("work_study_hours", "Work/Study Hours per day", "hours", Number, 0, 24, "Please enter valid work/study hours between 0 and 24"),
		numberedChoice("financial_stress", "Financial Stress", 3, scale(1, "1 (Very Low)", "2 (Low)", "3 (Moderate)", "4 (High)", "5 (Very High)")...),
		yesNo("family_history_mental_illness", "Family History of Mental Illness"),
		choice("new_degree", "Education Level", 0, seq("Graduated", "Post Graduated", "Higher Secondary", "Others")...),
	},
}

var stroke = &Disease{
	Slug:        "stroke",
	Name:        "Stroke",
	PageTitle:   "Stroke Risk Assessment",
	CardTitle:   "Stroke Risk Prediction",
	Description: "Assess your risk of stroke based on health metrics and lifestyle factors.",
	Content:     "Our model evaluates blood pressure, cholesterol, smoking status, and other factors to determine stroke risk.",
	Fields: []Field{
		choice("gender", "Gender", 0, maleFirst...),
		ageField,
		yesNo("hypertension", "Hypertension"),
		yesNo("heart_disease", "Heart Disease"),
		yesNo("ever_married", "Ever Married"),
		choice("work_type", "Work Type", 0, seq("Private", "Self-employed", "Government Job", "Children", "Never worked")...),
		choice("residence_type", "Residence Type", 0, seq("Urban", "Rural")...),
		ranged("avg_glucose_level", "Average Glucose Level", "mg/dL", Number, 50, 300, "Please enter a valid average glucose level between 50 and 300"),
		ranged("bmi", "BMI", "kg/m²", Number, 10, 50, "Please enter a valid BMI between 10 and 50"),
		choice("smoking_status", "Smoking Status", 0, seq("Never smoked", "Formerly smoked", "Smokes", "Unknown")...),
	},
}

var thyroid = &Disease{
	Slug:        "thyroid",
	Name:        "Thyroid Disorder",
	PageTitle:   "Thyroid Risk Assessment",
	CardTitle:   "Thyroid Disorder Detection",
	Description: "Identify potential thyroid disorders based on symptoms and test results.",
	Content:     "Our model analyzes thyroid hormone levels and symptoms to detect potential thyroid disorders.",
	Fields: []Field{
		ranged("age", "Age", "years", Number, 12, 92, "Please enter a valid age between 12 and 92"),
		choice("sex", "Sex", 0, femaleFirst...),
		yesNo("thyroxine", "On Thyroxine"),
		yesNo("queryonthyroxine", "Query on Thyroxine"),
		yesNo("onantithyroidmedication", "On Antithyroid Medication"),
		yesNo("sick", "Sick"),
		yesNo("pregnant", "Pregnant"),
		yesNo("thyroidsurgery", "Thyroid Surgery"),
		yesNo("I131treatment", "I131 Treatment"),
		yesNo("queryhypothyroid", "Query Hypothyroid"),
		yesNo("queryhyperthyroid", "Query Hyperthyroid"),
		yesNo("lithium", "Lithium"),
		yesNo("goitre", "Goitre"),
		yesNo("tumor", "Tumor"),
		yesNo("hypopituitary", "Hypopituitary"),
		yesNo("psych", "Psych"),
		ranged("TSH", "TSH", "mU/L", Number, 0, 40, "Please enter a valid TSH value between 0 and 40"),
		ranged("T3", "T3", "nmol/L", Number, 0, 6.6, "Please enter a valid T3 value between 0 and 6.6"),
		ranged("T4", "T4", "nmol/L", Number, 0, 258, "Please enter a valid T4 value between 0 and 258"),
		ranged("T4U", "T4U", "", Number, 0, 1.5, "Please enter a valid T4U value between 0 and 1.5"),
		ranged("FTI", "FTI", "", Number, 0, 227, "Please enter a valid FTI value between 0 and 227"),
	},
}

var parkinsons = &Disease{
	Slug:        "parkinsons",
	Name:        "Parkinson's Disease",
	PageTitle:   "Parkinson's Disease Assessment",
	CardTitle:   "Parkinson's Disease Assessment",
	Description: "Evaluate risk factors and early signs of Parkinson's disease.",
	Content:     "Our tool analyzes tremor patterns, movement changes, and other factors to assess Parkinson's risk.",
	Fields: []Field{
		ranged("age", "Age", "years", Number, 10, 100, "Please enter a valid age between 10 and 100"),
		choice("gender", "Gender", 0, maleFirst...),
		choice("ethnicity", "Ethnicity", 0, seq("Caucasian", "African American", "Asian", "Other")...),
		choice("education_level", "Education Level", 1, seq("None", "High School", "Bachelor's", "Higher")...),
		ranged("bmi", "BMI", "kg/m²", Number, 15, 40, "Please enter a valid BMI between 15 and 40"),
		yesNo("smoking", "Smoking"),
		ranged("alcohol_consumption", "Alcohol Consumption", "units/week", Number, 0, 20, "Please enter a valid alcohol consumption between 0 and 20 units/week"),
		ranged("physical_activity", "Physical Activity", "hours/week", Number, 0, 10, "Please enter a valid physical activity between 0 and 10 hours/week"),
		ranged("diet_quality", "Diet Quality", "", Integer, 0, 10, "Please enter a valid diet quality between 0 and 10"),
		ranged("sleep_quality", "Sleep Quality", "", Integer, 4, 10, "Please enter a valid sleep quality between 4 and 10"),
		yesNo("family_history_parkinsons", "Family History of Parkinson's"),
		yesNo("traumatic_brain_injury", "Traumatic Brain Injury"),
		yesNo("hypertension", "Hypertension"),
		yesNo("diabetes", "Diabetes"),
		yesNo("depression", "Depression"),
		yesNo("stroke", "Stroke"),
		ranged("systolic_bp", "Systolic BP", "mmHg", Integer, 90, 180, "Please enter a valid systolic blood pressure between 90 and 180 mmHg"),
		ranged("diastolic_bp", "Diastolic BP", "mmHg", Integer, 60, 120, "Please enter a valid diastolic blood pressure between 60 and 120 mmHg"),
		ranged("cholesterol_total", "Total Cholesterol", "mg/dL", Integer, 150, 300, "Please enter a valid total cholesterol between 150 and 300 mg/dL"),
		ranged("cholesterol_ldl", "LDL Cholesterol", "mg/dL", Integer, 50, 200, "Please enter a valid LDL cholesterol between 50 and 200 mg/dL"),
		ranged("cholesterol_hdl", "HDL Cholesterol", "mg/dL", Integer, 20, 100, "Please enter a valid HDL cholesterol between 20 and 100 mg/dL"),
		ranged("cholesterol_triglycerides", "Triglycerides", "mg/dL", Integer, 50, 400, "Please enter a valid triglycerides level between 50 and 400 mg/dL"),
		ranged("updrs", "UPDRS", "", Integer, 0, 199, "Please enter a valid UPDRS score between 0 and 199"),
		ranged("moca", "MoCA", "", Integer, 0, 30, "Please enter a valid MoCA score between 0 and 30"),
		ranged("functional_assessment", "Functional Assessment", "", Integer, 0, 10, "Please enter a valid functional assessment score between 0 and 10"),
		yesNo("tremor", "Tremor"),
		yesNo("rigidity", "Rigidity"),
		yesNo("bradykinesia", "Bradykinesia"),
		yesNo("postural_instability", "Postural Instability"),
		yesNo("speech_problems", "Speech Problems"),
		yesNo("sleep_disorders", "Sleep Disorders"),
		yesNo("constipation", "Constipation"),
	},
}

var kidney = &Disease{
	Slug:        "kidney",
	Name:        "Kidney Disease",
	PageTitle:   "Kidney Disease Risk Assessment",
	CardTitle:   "Kidney Fibrosis Detection",
	Description: "Assess risk of kidney fibrosis based on health metrics and test results.",
	Content:     "Our model evaluates kidney function tests and other health factors to detect potential kidney fibrosis.",
	Fields: []Field{
		ageField,
		ranged("blood_pressure", "Blood Pressure", "mm Hg", Number, 50, 200, "Please enter a valid blood pressure between 50 and 200"),
		ranged("specific_gravity", "Specific Gravity", "", Number, 1.005, 1.025, "Please enter a valid specific gravity between 1.005 and 1.025"),
		choice("albumin", "Albumin", 1, scale(1, "1", "2", "3", "4", "5")...),
		choice("sugar", "Sugar", 0, seq("0", "1", "2", "3", "4", "5")...),
		choice("red_blood_cells", "Red Blood Cells", 0, normalFirst...),
		choice("pus_cell", "Pus Cell", 0, normalFirst...),
		choice("pus_cell_clumps", "Pus Cell Clumps", 0, absentFirst...),
		choice("bacteria", "Bacteria", 0, absentFirst...),
		measurement("blood_glucose_random", "Blood Glucose Random", "mg/dL", "Please enter a valid blood glucose random value"),
		measurement("blood_urea", "Blood Urea", "mg/dL", "Please enter a valid blood urea value"),
		measurement("serum_creatinine", "Serum Creatinine", "mg/dL", "Please enter a valid serum creatinine value"),
		measurement("sodium", "Sodium", "mEq/L", "Please enter a valid sodium value"),
		measurement("potassium", "Potassium", "mEq/L", "Please enter a valid potassium value"),
		measurement("haemoglobin", "Haemoglobin", "g/dL", "Please enter a valid haemoglobin value"),
		measurement("packed_cell_volume", "Packed Cell Volume", "%", "Please enter a valid packed cell volume value"),
		measurement("white_blood_cell_count", "White Blood Cell Count", "cells/cumm", "Please enter a valid white blood cell count value"),
		measurement("red_blood_cell_count", "Red Blood Cell Count", "millions/cmm", "Please enter a valid red blood cell count value"),
		yesNo("hypertension", "Hypertension"),
		yesNo("diabetes_mellitus", "Diabetes Mellitus"),
		yesNo("coronary_artery_disease", "Coronary Artery Disease"),
		choice("appetite", "Appetite", 0, seq("Poor", "Good")...),
		yesNo("peda_edema", "Pedal Edema"),
		yesNo("aanemia", "Anemia"),
	},
}

var hepatitis = &Disease{
	Slug:        "hepatitis",
	Name:        "Hepatitis",
	PageTitle:   "Hepatitis Risk Assessment",
	CardTitle:   "Hepatitis Risk Assessment",
	Description: "Evaluate risk factors for hepatitis based on health metrics and lifestyle.",
	Content:     "Our tool analyzes liver function tests and risk factors to assess potential hepatitis risk.",
	Fields: []Field{
		ageField,
		choice("sex", "Sex", 0, femaleFirst...),
		measurement("ALB", "ALB (Albumin)", "g/L", "Please enter a valid ALB value"),
		measurement("CHE", "CHE (Cholinesterase)", "kU/L", "Please enter a valid CHE value"),
		measurement("CHOL", "CHOL (Cholesterol)", "mmol/L", "Please enter a valid CHOL value"),
		measurement("CREA_log", "CREA_log (Creatinine log)", "", "Please enter a valid CREA_log value"),
		measurement("BIL_log", "BIL_log (Bilirubin log)", "", "Please enter a valid BIL_log value"),
		measurement("ALT_log", "ALT_log (Alanine Transaminase log)", "", "Please enter a valid ALT_log value"),
		measurement("GGT_log", "GGT_log (Gamma-Glutamyl Transferase log)", "", "Please enter a valid GGT_log value"),
		measurement("AST_log", "AST_log (Aspartate Aminotransferase log)", "", "Please enter a valid AST_log value"),
		measurement("ALP_log", "ALP_log (Alkaline Phosphatase log)", "", "Please enter a valid ALP_log value"),
	},
}

// 首页卡片顺序
var ordered = []*Disease{diabetes, heart, depression, stroke, thyroid, parkinsons, kidney, hepatitis}

var bySlug = func() map[string]*Disease {
	m := make(map[string]*Disease, len(ordered))
	for _, d := range ordered {
		m[d.Slug] = d
	}
	return m
}()

// Lookup 按 slug 查找疾病定义
func Lookup(slug string) (*Disease, bool) {
	d, ok := bySlug[slug]
	return d, ok
}

// All 全部疾病（首页顺序）
func All() []*Disease {
	out := make([]*Disease, len(ordered))
	copy(out, ordered)
	return out
}
