package passage

import "github.com/hctsai/dazi/internal/model"

// Bundled pools used until (or instead of) fetched news.
var fallbackSentences = map[model.Lang][]string{
	model.LangZH: {
		"科技發展日新月異，人工智慧正在改變我們的生活方式。",
		"全球暖化問題日益嚴重，各國紛紛提出減碳目標。",
		"教育是國家發展的根本，培養人才是最重要的投資。",
		"健康飲食和規律運動是維持身體健康的不二法門。",
		"閱讀能夠開拓視野，增進知識，培養獨立思考能力。",
	},
	model.LangEN: {
		"Technology advances rapidly, transforming how we live and work.",
		"Climate change poses significant challenges to global communities.",
		"Education empowers individuals and drives economic growth.",
		"Regular exercise and balanced nutrition promote well-being.",
		"Reading expands horizons and cultivates critical thinking.",
	},
}

var fallbackArticles = map[model.Lang][]model.Article{
	model.LangZH: {
		{
			Title:   "人工智慧的發展與未來",
			Content: "人工智慧技術近年來取得了突破性的進展。從語音辨識到自然語言處理，從電腦視覺到自動駕駛，AI正在改變我們生活的方方面面。專家預測，未來十年內，人工智慧將會更深入地融入我們的日常生活，帶來更多便利的同時，也將帶來新的挑戰和機遇。隨著技術的不斷發展，我們需要思考如何在享受科技便利的同時，確保人工智慧的發展能夠造福全人類。",
		},
	},
	model.LangEN: {
		{
			Title:   "The Future of Artificial Intelligence",
			Content: "Artificial intelligence has made remarkable progress in recent years. From speech recognition to natural language processing, from computer vision to autonomous driving, AI is transforming every aspect of our lives. Experts predict that in the next decade, artificial intelligence will become even more integrated into our daily routines, bringing both new conveniences and challenges. As technology continues to evolve, we need to consider how to ensure that AI development benefits all of humanity while enjoying its conveniences.",
		},
	},
}
