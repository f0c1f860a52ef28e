package fixtures

import (
	"context"

	"health-portal-server/internal/models"
)

// StaticSource serves the compiled-in catalog.
type StaticSource struct{}

// Load returns a fresh copy of the compiled-in catalog.
func (StaticSource) Load(_ context.Context) (*Catalog, error) {
	return Static(), nil
}

// Static returns a copy of the compiled-in catalog.
func Static() *Catalog {
	return static.Clone()
}

var static = &Catalog{
	Features: []models.Feature{
		{Title: "健康数据中心", Description: "混合模式数据采集，支持设备自动同步和人工补充", Icon: "fa-heart-pulse", Path: "/health-data"},
		{Title: "智能分析平台", Description: "综合健康指数计算，多维评估您的健康状况", Icon: "fa-chart-line", Path: "/analysis"},
		// Does not match the registered /family-care route; see pages.Home.
		{Title: "家庭监护系统", Description: "多级预警推送，实时关注家人健康状态", Icon: "fa-house-medical", Path: "/monitoring"},
		{Title: "康复计划中心", Description: "AI生成的个性化康复方案，医生主导决策", Icon: "fa-clipboard-check", Path: "/rehabilitation"},
	},

	HealthScore: models.HealthScore{Physical: 82, Behavior: 76, Mental: 68, Overall: 76},
	ScoreWeights: []models.ScoreWeight{
		{Dimension: "physical", Percent: 40},
		{Dimension: "behavior", Percent: 35},
		{Dimension: "mental", Percent: 25},
	},
	Warnings: []models.Warning{
		{Level: models.WarningYellow, Message: "心理指数偏低", Suggestion: "建议增加社交活动，保持规律作息"},
		{Level: models.WarningRed, Message: "行为指数异常下降", Suggestion: "请及时就医检查，建议家人陪同"},
	},
	AgeRanges: []models.AgeRange{
		{Label: "18-30岁", PhysicalBase: 85, BehaviorBase: 80, MentalBase: 75},
		{Label: "31-45岁", PhysicalBase: 80, BehaviorBase: 75, MentalBase: 70},
		{Label: "46-60岁", PhysicalBase: 75, BehaviorBase: 70, MentalBase: 65},
		{Label: "60岁以上", PhysicalBase: 70, BehaviorBase: 65, MentalBase: 60},
	},

	Devices: []models.Device{
		{Name: "智能手环", Connected: true, LastSync: "2025-05-30 10:30"},
		{Name: "血压计", Connected: false, LastSync: "2025-05-28 15:20"},
		{Name: "血糖仪", Connected: true, LastSync: "2025-05-30 08:45"},
	},
	Telemetry: []models.HealthDataPoint{
		{Date: "05-24", HeartRate: 72, BloodOxygen: 98, Steps: 8432},
		{Date: "05-25", HeartRate: 75, BloodOxygen: 97, Steps: 7654},
		{Date: "05-26", HeartRate: 68, BloodOxygen: 99, Steps: 9231},
		{Date: "05-27", HeartRate: 71, BloodOxygen: 98, Steps: 8765},
		{Date: "05-28", HeartRate: 74, BloodOxygen: 96, Steps: 6543},
		{Date: "05-29", HeartRate: 70, BloodOxygen: 97, Steps: 7890},
		{Date: "05-30", HeartRate: 69, BloodOxygen: 98, Steps: 8123},
	},
	Medicines: []models.Medicine{
		{Name: "阿司匹林", Time: "08:00"},
		{Name: "降压药", Time: "12:00", Image: "https://example.com/medicine1.jpg"},
	},
	MoodDiary: []models.MoodEntry{
		{Date: "2025-05-29", Mood: "开心", VoiceNote: "今天感觉很好"},
		{Date: "2025-05-30", Mood: "一般"},
	},

	AbnormalMetrics: []models.AbnormalMetric{
		{Metric: "心率", Value: "112", NormalRange: "60-100", Timestamp: "2025-05-30 10:15"},
		{Metric: "血压", Value: "158/95", NormalRange: "<140/90", Timestamp: "2025-05-30 09:30"},
		{Metric: "血糖", Value: "9.8", NormalRange: "3.9-6.1", Timestamp: "2025-05-29 22:45"},
	},
	MedicalAdvice: []models.MedicalAdvice{
		{Title: "立即就医建议", Content: "患者心率持续偏高，建议立即前往心血管内科就诊，进行心电图和心脏超声检查。", Urgency: models.UrgencyHigh},
		{Title: "近期复查建议", Content: "血压控制不理想，建议3天内复查血压，如仍高于140/90需调整用药方案。", Urgency: models.UrgencyMedium},
	},
	PreparationItems: []models.PreparationItem{
		{Label: "医保卡/身份证"},
		{Label: "既往病历资料"},
		{Label: "当前服用药物清单"},
		{Label: "饮用水和零食"},
	},

	TreatmentPlans: []models.TreatmentPlan{
		{ID: 1, Name: "保守治疗", Effect: 75, Cost: 30, Compliance: 85, Risks: []string{"恢复周期长", "可能复发"}, Description: "以物理治疗和药物控制为主的保守治疗方案"},
		{ID: 2, Name: "标准治疗", Effect: 85, Cost: 60, Compliance: 70, Risks: []string{"轻微副作用", "需定期复查"}, Description: "结合药物和物理治疗的标准方案"},
		{ID: 3, Name: "强化治疗", Effect: 95, Cost: 90, Compliance: 50, Risks: []string{"明显副作用", "需住院观察"}, Description: "高强度药物和手术结合的强化方案"},
	},
}
