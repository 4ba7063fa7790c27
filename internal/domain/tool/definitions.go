package tool

import "github.com/shopspring/decimal"

func credits(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultTools is the literal tool catalog. It is not user-editable at
// runtime; the registry copies nothing because tools are immutable.
var DefaultTools = []Tool{
	{
		ID:          "text-generation",
		Name:        "Text Generation",
		Description: "Generate text using AI models",
		Icon:        "text.svg",
		Cost:        credits("1.0"),
		ExamplePrompts: []string{
			"Write a short story about a robot learning to paint.",
			"Create a product description for a new smartphone.",
			"Explain quantum computing to a 10-year-old.",
		},
		Providers:  []string{"openrouter", "openai", "deepseek", "huggingface"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "image-generation",
		Name:        "Image Generation",
		Description: "Generate images from text descriptions",
		Icon:        "image.svg",
		Cost:        credits("5.0"),
		ExamplePrompts: []string{
			"A futuristic city with flying cars and tall buildings.",
			"A photorealistic portrait of a cyberpunk character.",
			"A peaceful mountain landscape at sunset.",
		},
		Providers:  []string{"openai", "huggingface", "replicate"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "code-generation",
		Name:        "Code Generation",
		Description: "Generate code in various programming languages",
		Icon:        "code.svg",
		Cost:        credits("2.0"),
		ExamplePrompts: []string{
			"Write a Python function to calculate Fibonacci numbers.",
			"Create a React component for a login form.",
			"Generate a SQL query to find customers who made purchases last month.",
		},
		Providers:  []string{"openai", "deepseek", "openrouter"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-copywriter",
		Name:        "AI Copywriter",
		Description: "Generates product descriptions and creative content.",
		Icon:        "copywriter.svg",
		Cost:        credits("0.20"),
		ExamplePrompts: []string{
			"Generate a product description for a new gadget.",
			"Create a catchy tagline for a marketing campaign.",
		},
		Providers:  []string{"huggingface", "openrouter", "openai"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "email-generator",
		Name:        "Email Generator",
		Description: "Drafts professional or marketing emails.",
		Icon:        "email.svg",
		Cost:        credits("0.18"),
		ExamplePrompts: []string{
			"Draft a follow-up email for a job application.",
			"Create a marketing email for a new product launch.",
		},
		Providers:  []string{"huggingface", "deepseek", "openai"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "blog-writer",
		Name:        "Blog Writer",
		Description: "Writes detailed blog posts with SEO optimization.",
		Icon:        "blog.svg",
		Cost:        credits("0.30"),
		ExamplePrompts: []string{
			"Write a blog post about the benefits of meditation.",
			"Create a travel blog post about Paris.",
		},
		Providers:  []string{"huggingface", "deepseek", "openai"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "resume-builder",
		Name:        "AI Resume Builder",
		Description: "Creates professional resumes tailored to job roles.",
		Icon:        "resume.svg",
		Cost:        credits("0.25"),
		ExamplePrompts: []string{
			"Create a resume for a software engineer.",
			"Draft a resume for a marketing manager.",
		},
		Providers:  []string{"huggingface", "openrouter"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "cover-letter-creator",
		Name:        "Cover Letter Creator",
		Description: "Generates customized cover letters.",
		Icon:        "cover_letter.svg",
		Cost:        credits("0.20"),
		ExamplePrompts: []string{
			"Generate a cover letter for a data analyst position.",
			"Create a cover letter for a graphic designer role.",
		},
		Providers:  []string{"huggingface", "openrouter"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "script-generator",
		Name:        "Script Generator",
		Description: "Writes engaging video or movie scripts.",
		Icon:        "script.svg",
		Cost:        credits("0.30"),
		ExamplePrompts: []string{
			"Write a script for a 5-minute promotional video.",
			"Create a movie script for a romantic comedy.",
		},
		Providers:  []string{"huggingface", "deepseek"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "storytelling",
		Name:        "AI Storytelling",
		Description: "Develops creative and compelling stories.",
		Icon:        "storytelling.svg",
		Cost:        credits("0.20"),
		ExamplePrompts: []string{
			"Create a fantasy story about a dragon.",
			"Write a mystery story set in a small town.",
		},
		Providers:  []string{"huggingface", "openrouter"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "chatbot-assistant",
		Name:        "Chatbot Assistant",
		Description: "Provides conversational responses for support.",
		Icon:        "chatbot.svg",
		Cost:        credits("0.18"),
		ExamplePrompts: []string{
			"Provide support for a customer inquiry.",
			"Answer frequently asked questions about a product.",
		},
		Providers:  []string{"huggingface", "deepseek"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-image-generator",
		Name:        "AI Image Generator",
		Description: "Creates visuals from text prompts.",
		Icon:        "ai_image.svg",
		Cost:        credits("2.50"),
		ExamplePrompts: []string{
			"Generate an image of a sunset over the mountains.",
			"Create an illustration of a futuristic city.",
		},
		Providers:  []string{"huggingface", "replicate"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-logo-creator",
		Name:        "AI Logo Creator",
		Description: "Designs logos for startups and businesses.",
		Icon:        "logo.svg",
		Cost:        credits("1.50"),
		ExamplePrompts: []string{
			"Create a logo for a new tech startup.",
			"Design a logo for a coffee shop.",
		},
		Providers:  []string{"huggingface", "replicate"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-avatar-generator",
		Name:        "AI Avatar Generator",
		Description: "Generates custom avatars for gaming or profiles.",
		Icon:        "avatar.svg",
		Cost:        credits("2.00"),
		ExamplePrompts: []string{
			"Generate an avatar for a gaming profile.",
			"Create a custom avatar for a social media account.",
		},
		Providers:  []string{"huggingface", "replicate"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-face-swap",
		Name:        "AI Face Swap",
		Description: "Swaps faces in images or videos seamlessly.",
		Icon:        "face_swap.svg",
		Cost:        credits("2.00"),
		ExamplePrompts: []string{
			"Swap faces in a family photo.",
			"Create a fun face swap for a video.",
		},
		Providers:  []string{"huggingface", "replicate"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-meme-creator",
		Name:        "AI Meme Creator",
		Description: "Generates memes with custom captions.",
		Icon:        "meme.svg",
		Cost:        credits("0.40"),
		ExamplePrompts: []string{
			"Create a meme about cats.",
			"Generate a funny meme for social media.",
		},
		Providers:  []string{"huggingface", "replicate"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-video-editor",
		Name:        "AI Video Editor",
		Description: "Automates video edits, transitions, and effects.",
		Icon:        "video_editor.svg",
		Cost:        credits("10.00"),
		ExamplePrompts: []string{
			"Edit a video for a YouTube channel.",
			"Create a highlight reel from a sports event.",
		},
		Providers:  []string{"huggingface", "replicate"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-video-script-writer",
		Name:        "AI Video Script Writer",
		Description: "Generates structured video content ideas.",
		Icon:        "video_script.svg",
		Cost:        credits("0.30"),
		ExamplePrompts: []string{
			"Write a script for a cooking tutorial.",
			"Create a script for a travel vlog.",
		},
		Providers:  []string{"huggingface", "deepseek"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-video-dubbing",
		Name:        "AI Video Dubbing",
		Description: "Dubs videos in multiple languages with natural voices.",
		Icon:        "video_dubbing.svg",
		Cost:        credits("5.00"),
		ExamplePrompts: []string{
			"Dub a video in Spanish.",
			"Create a multilingual version of a promotional video.",
		},
		Providers:  []string{"huggingface", "replicate"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-data-analyzer",
		Name:        "AI Data Analyzer",
		Description: "Analyzes datasets for insights and trends.",
		Icon:        "data_analyzer.svg",
		Cost:        credits("3.00"),
		ExamplePrompts: []string{
			"Analyze sales data for trends.",
			"Generate insights from customer feedback data.",
		},
		Providers:  []string{"huggingface", "deepseek"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-code-optimizer",
		Name:        "AI Code Optimizer",
		Description: "Enhances Python, JavaScript, and SQL code.",
		Icon:        "code_optimizer.svg",
		Cost:        credits("0.60"),
		ExamplePrompts: []string{
			"Optimize this Python function for performance.",
			"Improve the readability of this SQL query.",
		},
		Providers:  []string{"huggingface", "deepseek"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-debugging-assistant",
		Name:        "AI Debugging Assistant",
		Description: "Identifies and corrects coding errors.",
		Icon:        "debugging.svg",
		Cost:        credits("1.00"),
		ExamplePrompts: []string{
			"Find and fix errors in this JavaScript code.",
			"Debug this Python script for syntax issues.",
		},
		Providers:  []string{"huggingface", "deepseek"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-quiz-generator",
		Name:        "AI Quiz Generator",
		Description: "Creates quizzes with multiple-choice options.",
		Icon:        "quiz.svg",
		Cost:        credits("0.40"),
		ExamplePrompts: []string{
			"Generate a quiz on world history.",
			"Create a multiple-choice quiz for a science topic.",
		},
		Providers:  []string{"huggingface", "deepseek"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-poetry-generator",
		Name:        "AI Poetry Generator",
		Description: "Crafts unique poetry on various themes.",
		Icon:        "poetry.svg",
		Cost:        credits("0.20"),
		ExamplePrompts: []string{
			"Write a poem about love.",
			"Create a haiku about nature.",
		},
		Providers:  []string{"huggingface", "openrouter"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
	{
		ID:          "ai-meditation-coach",
		Name:        "AI Meditation Coach",
		Description: "Guides users through relaxation exercises.",
		Icon:        "meditation.svg",
		Cost:        credits("1.00"),
		ExamplePrompts: []string{
			"Guide a user through a breathing exercise.",
			"Provide a meditation session for stress relief.",
		},
		Providers:  []string{"huggingface", "replicate"},
		AdDuration: 60,
		AdReward:   credits("1"),
	},
}
