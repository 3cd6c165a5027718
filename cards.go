package flashdeck

// StarterDeck returns the built-in AI glossary cards used to seed an empty
// store, so a fresh deployment has something to show.
func StarterDeck() []FlashCard {
	return []FlashCard{
		{
			Phrase:     "Artificial Intelligence (AI)",
			Category:   "Core AI Concepts & Types",
			Definition: "Artificial Intelligence (AI) is a broad field of computer science focused on creating systems that can perform tasks normally requiring human intelligence. AI enables machines to simulate human cognitive functions like learning, reasoning, problem-solving, perception, and even creativity.",
		},
		{
			Phrase:     "Machine Learning (ML)",
			Category:   "Core AI Concepts & Types",
			Definition: "A subset of AI that enables computers to learn and improve from experience without being explicitly programmed. ML algorithms build mathematical models based on training data to make predictions or decisions.",
		},
		{
			Phrase:     "Deep Learning",
			Category:   "Core AI Concepts & Types",
			Definition: "A specialized subset of machine learning that uses artificial neural networks with multiple layers to model and understand complex patterns in data, inspired by the structure and function of the human brain.",
		},
		{
			Phrase:     "Neural Network",
			Category:   "Technical Architecture",
			Definition: "A computing system inspired by biological neural networks that consists of interconnected nodes (neurons) that work together to process information and learn patterns from data.",
		},
		{
			Phrase:     "Natural Language Processing (NLP)",
			Category:   "AI Applications",
			Definition: "A branch of AI that focuses on the interaction between computers and human language, enabling machines to understand, interpret, and generate human language in a valuable way.",
		},
		{
			Phrase:     "Computer Vision",
			Category:   "AI Applications",
			Definition: "A field of AI that trains computers to interpret and understand visual information from the world, enabling machines to identify and analyze visual content like images and videos.",
		},
	}
}
