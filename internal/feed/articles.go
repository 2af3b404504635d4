package feed

// SeedArticles returns the built-in demo feed. The feed is fixed for the
// life of the process; there is no backend behind it.
func SeedArticles() []Article {
	return []Article{
		{
			Slug:        "how-to-train-your-dragon",
			Title:       "How to train your dragon",
			Description: "Ever wonder how?",
			Author:      "jake",
			Tags:        []string{"dragons", "training"},
			Body: "Believe it or not, the hardest part is not the fire.\n\n" +
				"Dragons respond best to consistency. Pick a schedule and keep it,\n" +
				"even when the weather turns and the mountain passes close.",
		},
		{
			Slug:        "the-song-you",
			Title:       "The song you won't ever stop singing",
			Description: "No matter how hard you try.",
			Author:      "anah",
			Tags:        []string{"music"},
			Body: "It starts with a single bar stuck on repeat.\n\n" +
				"Musicologists call it an earworm; everyone else calls it Tuesday.",
		},
		{
			Slug:        "sunsets-over-fuji",
			Title:       "Sunsets over Fuji",
			Description: "A travel diary in five parts.",
			Author:      "keiko",
			Tags:        []string{"travel", "photography"},
			Body: "The fifth station is where most people turn back.\n\n" +
				"That is exactly where the light gets interesting.",
		},
		{
			Slug:        "training-for-the-long-haul",
			Title:       "Training for the long haul",
			Description: "Endurance is a skill like any other.",
			Author:      "jake",
			Tags:        []string{"training", "running"},
			Body: "Nobody runs a hundred miles on willpower alone.\n\n" +
				"You run them on the two hundred mornings before race day.",
		},
		{
			Slug:        "field-recordings",
			Title:       "Field recordings from the north coast",
			Description: "Wind, water, and very patient microphones.",
			Author:      "anah",
			Tags:        []string{"music", "travel"},
			Body: "Salt air is the natural enemy of condenser microphones.\n\n" +
				"Bring spares. Bring spares for the spares.",
		},
	}
}
