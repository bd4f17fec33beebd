// Canned analysis templates, one set per locale.
package narrative

// Entry IDs, in the order rules are evaluated.
const (
	EntryLowAcceptance    = "low_acceptance"
	EntryRetail           = "retail"
	EntryTourism          = "tourism"
	EntryFoodService      = "food_service"
	EntryFintech          = "fintech"
	EntryTax              = "tax"
	EntryHousing          = "housing"
	EntryTransport        = "transport"
	EntryEnergyTransition = "energy_transition"
	EntryWelfare          = "welfare"
	EntryComplexity       = "complexity"
	EntryAffectedGroups   = "affected_groups"
	EntryOptimization     = "optimization"
	EntryRedesign         = "redesign"
)

var entryTemplates = map[Locale]map[string]entryTemplate{
	English: {
		EntryLowAcceptance: {
			Issue:       "Low Public Acceptance Challenge",
			Description: "The policy faces significant resistance across multiple demographics",
			Reasoning: "Demographic analysis shows strongest opposition from: Low-income citizens ({{ low_income }}% of population) due to economic concerns, " +
				"elderly residents ({{ elderly }}% over 55) due to change resistance, and outer district residents showing 35% higher opposition rates. " +
				"Policy complexity and unclear benefits contribute to skepticism.",
			Recommendation: "IMMEDIATE ACTIONS: (1) Simplify policy communication with clear benefit explanations. " +
				"(2) Provide economic impact assessments for different income groups. (3) Launch pilot programs in supportive districts first. " +
				"(4) Establish transition assistance for affected demographics. (5) Create community ambassadors program for grassroots engagement.",
		},
		EntryRetail: {
			Issue:       "Retail Transformation & Market Disruption",
			Description: "Digital retail revolution affects traditional business models and employment",
			Reasoning: "Retail transformation analysis: {{ retail_workers }}% of retail/logistics workers face job displacement risks. " +
				"However, {{ young_consumers }}% of consumers under 40 strongly support digital shopping experiences. " +
				"Traditional retailers lack 60% of required digital infrastructure. Implementation requires HK$2.5B investment in logistics networks.",
			Recommendation: "SMART RETAIL STRATEGY: (1) Establish retraining programs for 15,000 retail workers in e-commerce skills. " +
				"(2) Create government-backed digital transformation loans for SME retailers. (3) Build 5 smart logistics hubs in strategic locations. " +
				"(4) Launch \"Hong Kong Digital Shopping\" certification program. (5) Integrate with Greater Bay Area supply chains for 48-hour delivery.",
		},
		EntryTourism: {
			Issue:       "Tourism Industry Digitalization Challenge",
			Description: "Smart tourism requires infrastructure upgrades and industry adaptation",
			Reasoning: "Tourism sector analysis: {{ tourism_workers }}% of tourism workers need digital skills training. " +
				"Post-pandemic recovery shows 40% visitor preference for contactless experiences. " +
				"Current tourism infrastructure only supports 25% of smart tourism features. Integration with mainland health codes and payment systems required.",
			Recommendation: "SMART TOURISM ROADMAP: (1) Deploy AR/VR experiences at 50 major attractions within 18 months. " +
				"(2) Launch unified \"Hong Kong Smart Travel\" mobile app with real-time crowd management. " +
				"(3) Install 1000+ smart tourism kiosks with multilingual AI assistants. (4) Create digital tourism ambassador training for 5,000 workers. " +
				"(5) Establish seamless cross-border digital travel corridors.",
		},
		EntryFoodService: {
			Issue:       "F&B Digital Transformation Barriers",
			Description: "Food service industry faces technology adoption and operational challenges",
			Reasoning: "F&B sector analysis: {{ fb_workers }}% of food service workers lack digital operation skills. " +
				"70% of restaurants are family-owned SMEs with limited tech budgets. " +
				"Consumer demand for food delivery increased 300% but only 45% of restaurants have integrated systems. " +
				"Food safety digitalization requires new regulatory frameworks.",
			Recommendation: "F&B INNOVATION PLAN: (1) Subsidize digital POS systems for 8,000 local restaurants. " +
				"(2) Create \"Smart Kitchen\" certification with food safety IoT sensors. (3) Launch government-backed food delivery platform supporting local businesses. " +
				"(4) Establish F&B tech incubator with HK$500M funding. (5) Implement blockchain food traceability system for premium Hong Kong brands.",
		},
		EntryFintech: {
			Issue:       "FinTech Regulatory & Adoption Challenges",
			Description: "Financial innovation requires regulatory balance and public trust building",
			Reasoning: "FinTech ecosystem analysis: {{ fintech_workers }}% of finance professionals support innovation but 65% worry about job displacement. " +
				"{{ tech_savvy }}% of tech-savvy citizens ready for digital finance adoption. Traditional banks control 80% of market but lack agility. " +
				"Regulatory uncertainty affects 70% of FinTech startups.",
			Recommendation: "FINTECH HUB STRATEGY: (1) Establish regulatory sandbox for 100 FinTech startups with fast-track licensing. " +
				"(2) Launch Central Bank Digital Currency (CBDC) pilot program. (3) Create FinTech talent visa scheme attracting 2,000 global experts. " +
				"(4) Build Asia's largest blockchain research center with HK$1B investment. (5) Integrate with mainland digital yuan for seamless cross-border payments.",
		},
		EntryTax: {
			Issue:       "Economic Burden & Business Impact",
			Description: "Tax policies create financial pressure across multiple sectors",
			Reasoning: "Business sector analysis shows {{ business_workers }}% of finance/business workers fear job losses and reduced competitiveness. " +
				"{{ middle_income }}% of middle-income families already face housing cost pressures averaging 45% of income. " +
				"Small businesses lack resources for immediate compliance.",
			Recommendation: "Introduce progressive tax structure with SME exemptions, provide 3-year transition period with government subsidies, " +
				"create green technology adoption incentives, and establish business support centers for compliance assistance.",
		},
		EntryHousing: {
			Issue:       "{{ target_increase }}% Housing Increase: Capacity & Timeline Challenges",
			Description: "Policy requires {{ required_units }} units annually but faces significant implementation barriers",
			Reasoning: "Current analysis: Hong Kong produces 18,000 public housing units annually. " +
				"Your {{ target_increase }}% increase requires {{ shortfall }} additional units yearly. " +
				"This demands {{ additional_years }} extra years of construction capacity. " +
				"Land constraints affect {{ young_adults }}% of young adults (20-35) who desperately need housing. " +
				"Cost implications: HK${{ extra_budget }}M additional budget required annually. Environmental reviews will delay projects by 24-36 months.",
			Recommendation: "IMMEDIATE ACTIONS: (1) Fast-track 3 major land reclamation sites to add 500 hectares by 2026. " +
				"(2) Implement 24/7 construction permits for housing projects. (3) Launch modular housing factory producing 8,000 units/year. " +
				"(4) Convert 50 government buildings to transitional housing (12,000 units). (5) Establish HK$15B emergency housing fund. " +
				"EXPECTED OUTCOME: Achieve {{ three_year_target }}% of target within 3 years, full target by year 5.",
		},
		EntryTransport: {
			Issue:       "Infrastructure Integration Complexity",
			Description: "Transport expansion requires massive coordination and disruption management",
			Reasoning: "New railway lines require integration with 93 existing MTR stations and 8 major districts. " +
				"Construction will disrupt 150,000+ daily commuters for 5-8 years. " +
				"Geological surveys show 60% of proposed routes pass through challenging terrain requiring tunnel boring through granite bedrock.",
			Recommendation: "Implement smart construction scheduling to minimize peak-hour disruptions, provide enhanced bus services during construction, " +
				"use advanced tunnel boring machines to reduce construction time, and establish real-time commuter information systems.",
		},
		EntryEnergyTransition: {
			Issue:       "Energy Transition & Job Displacement",
			Description: "Green transition affects traditional energy sectors and requires workforce retraining",
			Reasoning: "Energy transition will affect {{ industrial_workers }}% of industrial workers. " +
				"Hong Kong's limited space allows only 3-4% renewable energy from local sources, requiring 85% energy imports. " +
				"Traditional power companies face $12B infrastructure upgrade costs. Skills gap analysis shows 40,000 workers need retraining for green jobs.",
			Recommendation: "Establish green job retraining centers with guaranteed placement programs, " +
				"negotiate regional renewable energy partnerships with mainland China, provide low-interest loans for building retrofits, " +
				"and create green technology innovation hubs to attract international investment.",
		},
		EntryWelfare: {
			Issue:       "Fiscal Sustainability & Work Incentives",
			Description: "Large-scale welfare programs require careful economic balancing",
			Reasoning: "Universal basic income for 500,000 eligible citizens would cost HK$36B annually (8% of government budget). " +
				"Economic modeling shows potential 12% reduction in work participation among low-skilled workers. " +
				"Tax revenue may decrease by HK$8B due to reduced economic activity, creating funding gap.",
			Recommendation: "Design conditional basic income tied to skills training or community service, " +
				"implement gradual rollout with economic impact monitoring, create work incentive bonuses for employment, " +
				"and establish dedicated revenue streams through digital services tax.",
		},
		EntryComplexity: {
			Issue:       "Policy Complexity & Implementation Analysis",
			Description: "This policy shows {{ level | level_label: locale }} complexity with specific implementation requirements",
			Reasoning: "Policy analysis reveals: Complexity Level: {{ level | upcase }} ({{ score }}/10). " +
				"Primary affected groups: {{ primary_labels | join: \", \" }} showing {{ support }}% overall support. " +
				"Implementation requires coordination across {{ departments }} government departments and affects {{ affected_share }}% of population directly.",
			Recommendation: "STRATEGIC APPROACH: (1) {{ timeline_label }} implementation timeline recommended. " +
				"(2) Focus on {{ supportive_labels | join: \" and \" }} as early adopters. " +
				"(3) Address concerns of {{ resistant_labels | join: \" and \" }} through targeted programs. " +
				"(4) Establish {{ checkpoints }} monitoring checkpoints. (5) Budget {{ budget }}% additional resources for complexity management.",
		},
		EntryAffectedGroups: {
			Issue:       "Affected Groups & Stakeholder Alignment",
			Description: "Directly affected: {{ primary_labels | join: \", \" }}",
			Reasoning: "Stakeholder mapping estimates {{ affected_share }}% of the population is directly affected at {{ support }}% overall support." +
				"{% if has_supportive %} Likely supporters: {{ supportive_labels | join: \" and \" }}.{% endif %}" +
				"{% if has_resistant %} Likely resisters: {{ resistant_labels | join: \" and \" }}.{% endif %}",
			Recommendation: "STAKEHOLDER PLAN: " +
				"{% if has_supportive %}(1) Enlist {{ supportive_labels | join: \" and \" }} as early champions. {% endif %}" +
				"{% if has_resistant %}(2) Run targeted consultations with {{ resistant_labels | join: \" and \" }} before rollout. {% endif %}" +
				"(3) Publish group-level impact assessments and review them at each monitoring checkpoint.",
		},
		EntryOptimization: {
			Issue:       "High Support: Optimization & Expansion Opportunities",
			Description: "Strong public backing enables accelerated implementation and scope expansion",
			Reasoning: "Exceptional {{ support }}% support indicates policy resonates well with citizens. " +
				"Analysis shows: Young adults ({{ young_adults }}%) and middle-income groups ({{ middle_income }}%) are primary supporters. " +
				"High support correlates with 85% faster approval processes, 40% higher compliance rates, and 60% lower implementation costs.",
			Recommendation: "MAXIMIZE SUCCESS: (1) Fast-track implementation by 12-18 months. (2) Expand policy scope by 25-35% while maintaining support. " +
				"(3) Use public backing to secure 20-30% additional funding. (4) Create citizen volunteer programs (target 500+ volunteers). " +
				"(5) Document best practices for replication in other regions.",
		},
		EntryRedesign: {
			Issue:       "Critical Support Deficit: Fundamental Redesign Required",
			Description: "Severe public resistance threatens policy viability and requires immediate intervention",
			Reasoning: "Critical {{ support }}% support indicates fundamental policy-citizen mismatch. " +
				"Strongest opposition from: Elderly ({{ elderly }}%), low-income ({{ low_income }}%), and high-income ({{ high_income }}%) groups. " +
				"Low support predicts 60% higher costs, 3x longer approval times, 70% reversal probability within 2 years.",
			Recommendation: "EMERGENCY REDESIGN PROTOCOL: (1) HALT current implementation immediately. (2) Conduct 60-day comprehensive stakeholder consultation. " +
				"(3) Reduce scope by 50% for pilot testing. (4) Increase compensation/benefits by 30% for affected groups. (5) Extend timeline by 2-3 years. " +
				"(6) Consider alternative policy frameworks. RISK: Proceeding without redesign has 85% failure probability.",
		},
	},
	Chinese: {
		EntryLowAcceptance: {
			Issue:          "公眾接受度挑戰",
			Description:    "政策在多個人口群體中面臨重大阻力",
			Reasoning:      "人口統計分析顯示最強烈反對來自：低收入市民（佔人口{{ low_income }}%）因經濟擔憂，長者（55歲以上佔{{ elderly }}%）因抗拒改變，外圍地區居民反對率高出35%。政策複雜性和不明確的好處導致懷疑。",
			Recommendation: "立即行動：(1) 簡化政策溝通，清楚解釋好處。(2) 為不同收入群體提供經濟影響評估。(3) 首先在支持度高的地區推行試點計劃。(4) 為受影響人群建立過渡援助。(5) 創建社區大使計劃進行基層參與。",
		},
		EntryRetail: {
			Issue:          "零售轉型與市場顛覆",
			Description:    "數字零售革命影響傳統商業模式和就業",
			Reasoning:      "零售轉型分析：{{ retail_workers }}%的零售/物流工人面臨失業風險。然而，{{ young_consumers }}%的40歲以下消費者強烈支持數字購物體驗。傳統零售商缺乏60%所需的數字基礎設施。實施需要25億港元物流網絡投資。",
			Recommendation: "智能零售策略：(1) 為15,000名零售工人建立電商技能再培訓計劃。(2) 為中小零售商創建政府支持的數字轉型貸款。(3) 在戰略位置建設5個智能物流中心。(4) 推出「香港數字購物」認證計劃。(5) 與大灣區供應鏈整合實現48小時送達。",
		},
		EntryTourism: {
			Issue:          "旅遊業數字化挑戰",
			Description:    "智能旅遊需要基礎設施升級和行業適應",
			Reasoning:      "旅遊業分析：{{ tourism_workers }}%的旅遊業工人需要數字技能培訓。疫後復甦顯示40%遊客偏好無接觸體驗。目前旅遊基礎設施僅支持25%的智能旅遊功能。需要與內地健康碼和支付系統整合。",
			Recommendation: "智能旅遊路線圖：(1) 18個月內在50個主要景點部署AR/VR體驗。(2) 推出統一的「香港智能旅遊」手機應用，具備實時人流管理。(3) 安裝1000+個配備多語言AI助手的智能旅遊資訊亭。(4) 為5,000名工人創建數字旅遊大使培訓。(5) 建立無縫跨境數字旅遊走廊。",
		},
		EntryFoodService: {
			Issue:          "餐飲數字化轉型障礙",
			Description:    "餐飲業面臨技術採用和營運挑戰",
			Reasoning:      "餐飲業分析：{{ fb_workers }}%的餐飲服務工人缺乏數字營運技能。70%的餐廳是家族式中小企業，技術預算有限。消費者對外賣需求增長300%，但僅45%餐廳有整合系統。食品安全數字化需要新的監管框架。",
			Recommendation: "餐飲創新計劃：(1) 為8,000家本地餐廳補貼數字收銀系統。(2) 創建配備食品安全物聯網傳感器的「智能廚房」認證。(3) 推出支持本地企業的政府支持外賣平台。(4) 建立5億港元資金的餐飲科技孵化器。(5) 為香港優質品牌實施區塊鏈食品溯源系統。",
		},
		EntryFintech: {
			Issue:          "金融科技監管與採用挑戰",
			Description:    "金融創新需要監管平衡和建立公眾信任",
			Reasoning:      "金融科技生態分析：{{ fintech_workers }}%的金融專業人士支持創新，但65%擔心失業。{{ tech_savvy }}%的科技精通市民準備採用數字金融。傳統銀行控制80%市場但缺乏靈活性。監管不確定性影響70%的金融科技初創企業。",
			Recommendation: "金融科技中心策略：(1) 為100家金融科技初創企業建立監管沙盒，提供快速牌照。(2) 推出央行數字貨幣(CBDC)試點計劃。(3) 創建金融科技人才簽證計劃，吸引2,000名全球專家。(4) 投資10億港元建設亞洲最大區塊鏈研究中心。(5) 與內地數字人民幣整合實現無縫跨境支付。",
		},
		EntryTax: {
			Issue:          "經濟負擔與商業影響",
			Description:    "稅收政策對多個行業造成財政壓力",
			Reasoning:      "商業部門分析顯示{{ business_workers }}%的金融/商業工作者擔心失業和競爭力下降。{{ middle_income }}%的中等收入家庭已面臨平均佔收入45%的住房成本壓力。小企業缺乏即時合規的資源。",
			Recommendation: "引入對中小企業豁免的累進稅制，提供3年過渡期和政府補貼，創建綠色技術採用激勵措施，並建立商業支援中心協助合規。",
		},
		EntryHousing: {
			Issue:          "{{ target_increase }}%房屋增加：能力與時間表挑戰",
			Description:    "政策需要每年{{ required_units }}個單位但面臨重大實施障礙",
			Reasoning:      "目前分析：香港每年生產18,000個公共房屋單位。您的{{ target_increase }}%增加需要每年額外{{ shortfall }}個單位。這需要{{ additional_years }}年額外的建設能力。土地限制影響{{ young_adults }}%急需住房的年輕成年人（20-35歲）。成本影響：每年需額外預算{{ extra_budget }}百萬港元。環境審查將延遲項目24-36個月。",
			Recommendation: "立即行動：(1) 加速3個主要填海地點，2026年前增加500公頃。(2) 對房屋項目實施24/7建築許可。(3) 啟動模組化房屋工廠，每年生產8,000個單位。(4) 將50座政府大廈轉為過渡性房屋（12,000個單位）。(5) 設立150億港元緊急房屋基金。預期成果：3年內實現{{ three_year_target }}%目標，第5年實現全部目標。",
		},
		EntryTransport: {
			Issue:          "基礎設施整合複雜性",
			Description:    "交通擴展需要大規模協調和干擾管理",
			Reasoning:      "新鐵路線需要與93個現有港鐵站和8個主要地區整合。建設將干擾150,000+名日常通勤者5-8年。地質調查顯示60%的擬議路線經過具挑戰性地形，需要通過花崗岩基岩進行隧道鑽探。",
			Recommendation: "實施智能建設排程以減少繁忙時間干擾，在建設期間提供增強巴士服務，使用先進隧道鑽探機減少建設時間，並建立實時通勤者信息系統。",
		},
		EntryEnergyTransition: {
			Issue:          "能源轉型與就業轉移",
			Description:    "綠色轉型影響傳統能源部門並需要勞動力再培訓",
			Reasoning:      "能源轉型將影響{{ industrial_workers }}%的工業工人。香港有限空間僅允許3-4%的本地可再生能源，需要85%能源進口。傳統電力公司面臨120億美元基礎設施升級成本。技能差距分析顯示40,000名工人需要為綠色工作再培訓。",
			Recommendation: "建立有保證就業計劃的綠色工作再培訓中心，與中國大陸談判區域可再生能源夥伴關係，為建築改造提供低息貸款，並創建綠色技術創新中心吸引國際投資。",
		},
		EntryWelfare: {
			Issue:          "財政可持續性與工作激勵",
			Description:    "大規模福利計劃需要仔細的經濟平衡",
			Reasoning:      "為500,000名符合條件的市民提供全民基本收入每年將花費360億港元（政府預算的8%）。經濟模型顯示低技能工人的工作參與率可能減少12%。由於經濟活動減少，稅收可能減少80億港元，造成資金缺口。",
			Recommendation: "設計與技能培訓或社區服務掛鉤的有條件基本收入，實施漸進式推出並監控經濟影響，為就業創建工作激勵獎金，並通過數字服務稅建立專門收入來源。",
		},
		EntryComplexity: {
			Issue:          "政策複雜性與實施分析",
			Description:    "此政策顯示{{ level | level_label: locale }}複雜性，具有特定實施要求",
			Reasoning:      "政策分析顯示：複雜程度：{{ level | level_label: locale }}（{{ score }}/10）。主要受影響群體：{{ primary_labels | join: \"、\" }}，整體支持度{{ support }}%。實施需要{{ departments }}個政府部門協調，直接影響{{ affected_share }}%人口。",
			Recommendation: "策略方法：(1) 建議{{ timeline_label }}實施時間表。(2) 專注於{{ supportive_labels | join: \"和\" }}作為早期採用者。(3) 通過針對性計劃解決{{ resistant_labels | join: \"和\" }}的擔憂。(4) 建立{{ checkpoints }}個監控檢查點。(5) 為複雜性管理預算額外{{ budget }}%資源。",
		},
		EntryAffectedGroups: {
			Issue:       "受影響群體與持份者取向",
			Description: "直接受影響：{{ primary_labels | join: \"、\" }}",
			Reasoning: "持份者分析估計{{ affected_share }}%人口直接受影響，整體支持度{{ support }}%。" +
				"{% if has_supportive %}可能支持者：{{ supportive_labels | join: \"和\" }}。{% endif %}" +
				"{% if has_resistant %}可能反對者：{{ resistant_labels | join: \"和\" }}。{% endif %}",
			Recommendation: "持份者計劃：" +
				"{% if has_supportive %}(1) 邀請{{ supportive_labels | join: \"和\" }}擔任早期倡導者。{% endif %}" +
				"{% if has_resistant %}(2) 推行前與{{ resistant_labels | join: \"和\" }}進行針對性諮詢。{% endif %}" +
				"(3) 公布各群體影響評估，並於每個監控檢查點檢討。",
		},
		EntryOptimization: {
			Issue:          "高支持度：優化與擴展機會",
			Description:    "強烈公眾支持使加速實施和範圍擴展成為可能",
			Reasoning:      "出色的{{ support }}%支持度表明政策與市民產生共鳴。分析顯示：年輕成年人（{{ young_adults }}%）和中等收入群體（{{ middle_income }}%）是主要支持者。高支持度與快85%的審批流程、高40%的合規率和低60%的實施成本相關。",
			Recommendation: "最大化成功：(1) 將實施提前12-18個月。(2) 在維持支持的同時將政策範圍擴大25-35%。(3) 利用公眾支持獲取20-30%額外資金。(4) 創建市民志願者計劃（目標500+志願者）。(5) 記錄最佳實踐以在其他地區複製。",
		},
		EntryRedesign: {
			Issue:          "關鍵支持不足：需要根本性重新設計",
			Description:    "嚴重的公眾阻力威脅政策可行性，需要立即干預",
			Reasoning:      "關鍵的{{ support }}%支持度表明政策與市民根本不匹配。最強烈反對來自：長者（{{ elderly }}%）、低收入（{{ low_income }}%）和高收入（{{ high_income }}%）群體。低支持度預測成本高60%、審批時間長3倍、2年內70%逆轉概率。",
			Recommendation: "緊急重新設計協議：(1) 立即停止當前實施。(2) 進行60天全面利益相關者諮詢。(3) 將範圍減少50%進行試點測試。(4) 為受影響群體增加30%賠償/福利。(5) 將時間表延長2-3年。(6) 考慮替代政策框架。風險：不重新設計而繼續進行有85%失敗概率。",
		},
	},
}

var complexityLabels = map[Locale]map[ComplexityLevel]string{
	English: {ComplexityLow: "low", ComplexityMedium: "medium", ComplexityHigh: "high"},
	Chinese: {ComplexityLow: "低", ComplexityMedium: "中等", ComplexityHigh: "高"},
}

var timelineLabels = map[Locale]map[Timeline]string{
	English: {TimelineAccelerated: "Accelerated", TimelineStandard: "Standard", TimelineExtended: "Extended"},
	Chinese: {TimelineAccelerated: "加速", TimelineStandard: "標準", TimelineExtended: "延長"},
}

var groupLabels = map[Locale]map[Group]string{
	Chinese: {
		GroupYoungAdults:       "年輕成年人",
		GroupLowIncomeFamilies: "低收入家庭",
		GroupBusinesses:        "企業",
		GroupMiddleIncome:      "中等收入人士",
		GroupFamiliesWithKids:  "有子女家庭",
		GroupTeachers:          "教師",
		GroupElderly:           "長者",
		GroupChronicPatients:   "長期病患者",
		GroupCommuters:         "通勤者",
		GroupOuterDistricts:    "外圍地區居民",
		GroupAllCitizens:       "全體市民",
		GroupFutureGenerations: "下一代",
		GroupGeneralPublic:     "一般公眾",
	},
}

func complexityLabel(l Locale, level ComplexityLevel) string {
	if s, ok := complexityLabels[l][level]; ok {
		return s
	}
	return string(level)
}

func timelineLabel(l Locale, t Timeline) string {
	if s, ok := timelineLabels[l][t]; ok {
		return s
	}
	return string(t)
}

// GroupLabels localizes a list of groups. English uses the keys verbatim.
func GroupLabels(l Locale, groups []Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		if s, ok := groupLabels[l][g]; ok {
			out[i] = s
		} else {
			out[i] = string(g)
		}
	}
	return out
}
