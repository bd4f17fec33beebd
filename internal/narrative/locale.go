// Package narrative selects and renders the canned, parameterized analysis
// entries and citizen voices that accompany a simulation result.
// Every formatting call takes an explicit Locale.
package narrative

import (
	"strconv"
	"strings"
)

// Locale selects the language of rendered text.
type Locale string

const (
	English Locale = "en"
	Chinese Locale = "zh"
)

// Locales lists the supported locales.
var Locales = []Locale{English, Chinese}

// ParseLocale maps a tag such as "zh", "zh-HK" or "EN" to a Locale.
// Unknown tags fall back to English.
func ParseLocale(tag string) Locale {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if strings.HasPrefix(tag, "zh") {
		return Chinese
	}
	return English
}

// Labels holds short UI strings consumed by renderers.
type Labels struct {
	Support          string `json:"support"`
	Opposition       string `json:"opposition"`
	WhyMatters       string `json:"why_matters"`
	StrategicRec     string `json:"strategic_recommendation"`
	ProPolicy        string `json:"pro_policy"`
	AntiPolicy       string `json:"anti_policy"`
	Completed        string `json:"completed"`
	NoMetrics        string `json:"no_metrics"`
	NoVoices         string `json:"no_voices"`
	ActivityHigh     string `json:"activity_high"`
	ActivityModerate string `json:"activity_moderate"`
	ActivityLow      string `json:"activity_low"`
	ActivityInactive string `json:"activity_inactive"`
}

type localeTable struct {
	labels   Labels
	criteria []string
	phases   []string
	samples  []string
	prompt   string
}

var tables = map[Locale]localeTable{
	English: {
		labels: Labels{
			Support:          "Support",
			Opposition:       "Opposition",
			WhyMatters:       "Why this matters:",
			StrategicRec:     "Strategic Recommendation:",
			ProPolicy:        "Pro-Policy",
			AntiPolicy:       "Anti-Policy",
			Completed:        "Simulation completed successfully",
			NoMetrics:        "No specific impact metrics available for this policy type.",
			NoVoices:         "No citizen feedback available for this policy type.",
			ActivityHigh:     "High Activity",
			ActivityModerate: "Moderate Activity",
			ActivityLow:      "Low Activity",
			ActivityInactive: "Inactive",
		},
		criteria: []string{
			"Economic impact on household income",
			"Environmental protection effectiveness",
			"Social influence and herding effects",
			"Long-term sustainability outcomes",
			"Policy-action-environment correlation strength",
		},
		phases: []string{
			"Collecting real-time Hong Kong data...",
			"Analyzing policy-action-environment correlations...",
			"Generating city model with 1000 AI citizen agents...",
			"Running 10-year policy simulation with agent interactions...",
			"Processing herding effects and social influence patterns...",
			"Generating effectiveness analysis and environmental impact data...",
		},
		samples: []string{
			"Increase public housing supply by 30% over 5 years",
			"Implement carbon tax of $100 per ton to reduce emissions",
			"Expand MTR network to cover all districts by 2030",
			"Introduce universal basic income for citizens below poverty line",
			"Mandate 50% renewable energy for all new buildings",
			"Launch smart retail platform with AI-powered logistics network",
			"Implement blockchain-based FinTech regulatory sandbox",
			"Deploy AR/VR tourism experiences across 50 major attractions",
			"Create unified F&B digital ecosystem with IoT food safety monitoring",
			"Establish Web3 innovation hub for cryptocurrency startups",
		},
		prompt: "Please enter a policy or strategy to test.",
	},
	Chinese: {
		labels: Labels{
			Support:          "支持",
			Opposition:       "反對",
			WhyMatters:       "重要原因：",
			StrategicRec:     "策略建議：",
			ProPolicy:        "支持政策",
			AntiPolicy:       "反對政策",
			Completed:        "模擬成功完成",
			NoMetrics:        "此政策類型無特定影響指標。",
			NoVoices:         "此政策類型無市民反饋。",
			ActivityHigh:     "高活動度",
			ActivityModerate: "中等活動度",
			ActivityLow:      "低活動度",
			ActivityInactive: "無活動",
		},
		criteria: []string{
			"對家庭收入的經濟影響",
			"環境保護效能",
			"社會影響和羊群效應",
			"長期可持續性成果",
			"政策-行動-環境關聯強度",
		},
		phases: []string{
			"收集香港實時數據中...",
			"分析政策-行動-環境關聯性中...",
			"生成1000個AI市民代理城市模型中...",
			"執行10年政策模擬及代理互動中...",
			"處理羊群效應和社會影響模式中...",
			"生成效能分析和環境影響數據中...",
		},
		samples: []string{
			"在5年內增加30%公共房屋供應",
			"實施每噸100美元的碳稅以減少排放",
			"在2030年前將港鐵網絡擴展至所有地區",
			"為貧困線以下市民引入全民基本收入",
			"要求所有新建築物使用50%可再生能源",
			"推出AI智能物流網絡的智能零售平台",
			"實施區塊鏈金融科技監管沙盒",
			"在50個主要景點部署AR/VR旅遊體驗",
			"創建統一餐飲數字生態系統及物聯網食品安全監控",
			"建立Web3創新中心支持加密貨幣初創企業",
		},
		prompt: "請輸入要測試的政策或策略。",
	},
}

func table(l Locale) localeTable {
	if t, ok := tables[l]; ok {
		return t
	}
	return tables[English]
}

// LabelsFor returns the UI labels for l.
func LabelsFor(l Locale) Labels {
	return table(l).labels
}

// Criteria returns the fixed decision-criteria list for l.
func Criteria(l Locale) []string {
	return append([]string(nil), table(l).criteria...)
}

// SamplePolicies returns example policy texts for l.
func SamplePolicies(l Locale) []string {
	return append([]string(nil), table(l).samples...)
}

// EnterPolicyPrompt is shown when the policy text is empty.
func EnterPolicyPrompt(l Locale) string {
	return table(l).prompt
}

// Phases returns the staged progress messages for a run of the given length
// over a population of the given size.
func Phases(l Locale, years, population int) []string {
	y := strconv.Itoa(years)
	n := strconv.Itoa(population)
	src := table(l).phases
	out := make([]string, len(src))
	for i, p := range src {
		p = strings.Replace(p, "10-year", y+"-year", 1)
		p = strings.Replace(p, "10年", y+"年", 1)
		p = strings.Replace(p, "1000 AI", n+" AI", 1)
		p = strings.Replace(p, "1000個", n+"個", 1)
		out[i] = p
	}
	return out
}
