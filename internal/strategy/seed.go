package strategy

import "github.com/solaceapp/solace/internal/domain"

// seedStrategies returns the built-in strategy library. Declaration order is
// the catalog's stable order; append new records rather than reordering.
func seedStrategies() []domain.Strategy {
	return []domain.Strategy{
		// --- mindfulness ---
		{
			ID:           "box-breathing",
			Title:        "Box breathing",
			Description:  "Slow, even breathing to settle the nervous system when everything feels urgent.",
			Category:     domain.CategoryMindfulness,
			Intensity:    domain.IntensityQuick,
			TimeEstimate: "3-5 minutes",
			Steps: []string{
				"Breathe in through your nose for a count of four",
				"Hold for four",
				"Breathe out through your mouth for four",
				"Hold empty for four, then repeat for at least four rounds",
			},
			Tips:        []string{"Counting on your fingers keeps the rhythm without thinking about it"},
			MoodTargets: []string{"anxious", "stressed", "overwhelmed"},
		},
		{
			ID:           "five-senses-grounding",
			Title:        "5-4-3-2-1 grounding",
			Description:  "Walk your attention through your senses to interrupt a spiral and come back to the room.",
			Category:     domain.CategoryMindfulness,
			Intensity:    domain.IntensityQuick,
			TimeEstimate: "5 minutes",
			Steps: []string{
				"Name five things you can see",
				"Name four things you can feel",
				"Name three things you can hear",
				"Name two things you can smell",
				"Name one thing you can taste",
			},
			MoodTargets: []string{"anxious", "overwhelmed", "numb"},
		},
		{
			ID:           "body-scan",
			Title:        "Body scan",
			Description:  "A slow tour of the body, noticing tension without trying to fix it.",
			Category:     domain.CategoryMindfulness,
			Intensity:    domain.IntensityModerate,
			TimeEstimate: "10-15 minutes",
			Steps: []string{
				"Lie down or sit somewhere you won't be interrupted",
				"Start at your toes and move attention slowly upward",
				"At each area, notice sensation without judging it",
				"When your mind wanders, return to the last body part you remember",
			},
			MoodTargets: []string{"stressed", "anxious"},
		},
		{
			ID:           "mindful-walk",
			Title:        "Mindful walk",
			Description:  "A short walk where the walking itself is the point: pace, breath, surroundings.",
			Category:     domain.CategoryMindfulness,
			Intensity:    domain.IntensityModerate,
			TimeEstimate: "15-20 minutes",
			Steps: []string{
				"Leave your headphones at home",
				"Match your attention to your footsteps for the first minute",
				"Notice three things along the way you have never noticed before",
			},
			MoodTargets: []string{"stressed", "numb", "sad"},
		},
		{
			ID:           "guided-meditation",
			Title:        "Long guided meditation",
			Description:  "A full-length guided session for when a quick reset hasn't been enough.",
			Category:     domain.CategoryMindfulness,
			Intensity:    domain.IntensityIntensive,
			TimeEstimate: "30-45 minutes",
			Steps: []string{
				"Pick a guided session of at least thirty minutes",
				"Silence notifications and set a soft end alarm",
				"Afterwards, write one sentence about what shifted",
			},
			MoodTargets: []string{"anxious", "overwhelmed"},
		},

		// --- cognitive ---
		{
			ID:           "evidence-check",
			Title:        "Evidence check",
			Description:  "Test a harsh automatic thought against what actually happened.",
			Category:     domain.CategoryCognitive,
			Intensity:    domain.IntensityQuick,
			TimeEstimate: "5-10 minutes",
			Steps: []string{
				"Write the thought down word for word",
				"List the evidence for it",
				"List the evidence against it",
				"Write a fairer version of the thought",
			},
			Tips:        []string{"Ask what you would say to a friend who had this thought"},
			MoodTargets: []string{"sad", "anxious"},
		},
		{
			ID:           "thought-reframing",
			Title:        "Thought reframing",
			Description:  "Catch the story you're telling about a setback and rewrite it without the catastrophe.",
			Category:     domain.CategoryCognitive,
			Intensity:    domain.IntensityModerate,
			TimeEstimate: "15 minutes",
			Steps: []string{
				"Describe the situation in one neutral sentence",
				"Write the interpretation your mind jumped to",
				"List two other explanations that fit the same facts",
				"Pick the explanation you'd bet on if it were someone else's life",
			},
			MoodTargets: []string{"sad", "angry", "anxious"},
		},
		{
			ID:           "worry-window",
			Title:        "Worry window",
			Description:  "Contain open-loop worries to a scheduled slot instead of letting them run all day.",
			Category:     domain.CategoryCognitive,
			Intensity:    domain.IntensityModerate,
			TimeEstimate: "15-20 minutes",
			Steps: []string{
				"Schedule a fixed 15-minute worry slot later today",
				"When a worry surfaces before then, jot a keyword and postpone it",
				"In the slot, go through the list and mark each worry actionable or not",
				"Turn actionable ones into a single next step",
			},
			MoodTargets: []string{"anxious", "stressed"},
		},
		{
			ID:           "values-review",
			Title:        "Values review",
			Description:  "Step back from a painful event and reconnect with what you want your response to stand for.",
			Category:     domain.CategoryCognitive,
			Intensity:    domain.IntensityIntensive,
			TimeEstimate: "30 minutes",
			Steps: []string{
				"List three values that matter most to you right now",
				"For each, write how the current situation touches it",
				"Choose one small action this week that moves toward a value rather than away from pain",
			},
			MoodTargets: []string{"sad", "numb", "hopeful"},
		},

		// --- physical ---
		{
			ID:           "quick-stretch",
			Title:        "Desk stretch",
			Description:  "Two minutes of stretching to break the physical grip of stress.",
			Category:     domain.CategoryPhysical,
			Intensity:    domain.IntensityQuick,
			TimeEstimate: "2-3 minutes",
			Steps: []string{
				"Stand up and reach overhead for ten seconds",
				"Roll your shoulders back five times",
				"Drop your chin to your chest and slowly circle your head",
				"Shake out your arms and hands",
			},
			MoodTargets: []string{"stressed", "angry"},
		},
		{
			ID:           "cold-water-reset",
			Title:        "Cold water reset",
			Description:  "A burst of cold on the face to cut through a surge of anger or panic.",
			Category:     domain.CategoryPhysical,
			Intensity:    domain.IntensityQuick,
			TimeEstimate: "1-2 minutes",
			Steps: []string{
				"Run cold water over your wrists for thirty seconds",
				"Splash your face twice",
				"Take five slow breaths before returning to what you were doing",
			},
			MoodTargets: []string{"angry", "anxious", "overwhelmed"},
		},
		{
			ID:           "brisk-walk",
			Title:        "Brisk walk",
			Description:  "Twenty minutes at a pace fast enough that your body takes over from your head.",
			Category:     domain.CategoryPhysical,
			Intensity:    domain.IntensityModerate,
			TimeEstimate: "20 minutes",
			Steps: []string{
				"Pick a route before you leave so there's nothing to decide",
				"Walk fast enough that talking would take effort",
				"Let your thoughts run; don't steer them",
			},
			MoodTargets: []string{"stressed", "sad", "angry"},
		},
		{
			ID:           "full-workout",
			Title:        "Full workout",
			Description:  "A proper training session for the days a walk won't burn it off.",
			Category:     domain.CategoryPhysical,
			Intensity:    domain.IntensityIntensive,
			TimeEstimate: "45-60 minutes",
			Steps: []string{
				"Choose a session you already know: gym, run, swim, or a video",
				"Warm up for five minutes before pushing",
				"Finish with two minutes of slow breathing",
			},
			Tips:        []string{"Lay out your gear first; starting is the whole battle"},
			MoodTargets: []string{"angry", "stressed"},
		},

		// --- social ---
		{
			ID:           "reach-out-text",
			Title:        "Reach-out text",
			Description:  "One honest message to one person. Not a broadcast, not a performance.",
			Category:     domain.CategorySocial,
			Intensity:    domain.IntensityQuick,
			TimeEstimate: "5 minutes",
			Steps: []string{
				"Pick someone who has been easy to talk to before",
				"Say how today actually went, in two or three sentences",
				"Send it before you rewrite it a third time",
			},
			MoodTargets: []string{"lonely", "sad"},
		},
		{
			ID:           "gratitude-message",
			Title:        "Gratitude message",
			Description:  "Tell someone specifically what they did that mattered to you.",
			Category:     domain.CategorySocial,
			Intensity:    domain.IntensityQuick,
			TimeEstimate: "5-10 minutes",
			Steps: []string{
				"Think of a person who helped you recently, in any small way",
				"Write them a message naming the specific thing and its effect on you",
				"Send it without softening it into a joke",
			},
			MoodTargets: []string{"lonely", "numb", "hopeful"},
		},
		{
			ID:           "call-a-friend",
			Title:        "Call a friend",
			Description:  "A real-time conversation with someone you trust, voice or video.",
			Category:     domain.CategorySocial,
			Intensity:    domain.IntensityModerate,
			TimeEstimate: "20-30 minutes",
			Steps: []string{
				"Choose the person, not the topic; the topic will come",
				"Open with how you're actually doing",
				"Ask them one real question about their life before hanging up",
			},
			MoodTargets: []string{"lonely", "sad", "overwhelmed"},
		},
		{
			ID:           "plan-shared-activity",
			Title:        "Plan a shared activity",
			Description:  "Put something with another person on the calendar; future company is an anchor.",
			Category:     domain.CategorySocial,
			Intensity:    domain.IntensityIntensive,
			TimeEstimate: "varies",
			Steps: []string{
				"Pick an activity you'd enjoy even on a flat day",
				"Invite someone with a concrete date and time, not a vague 'sometime'",
				"Book whatever needs booking immediately so it sticks",
			},
			MoodTargets: []string{"lonely", "numb"},
		},

		// --- creative ---
		{
			ID:           "free-writing",
			Title:        "Free writing",
			Description:  "Ten minutes of unfiltered writing; the page can hold what you can't say out loud.",
			Category:     domain.CategoryCreative,
			Intensity:    domain.IntensityQuick,
			TimeEstimate: "10 minutes",
			Steps: []string{
				"Set a ten-minute timer",
				"Write continuously without correcting or rereading",
				"When the timer ends, stop mid-sentence if you have to",
				"Close the page; rereading is optional and for another day",
			},
			MoodTargets: []string{"sad", "angry", "overwhelmed"},
		},
		{
			ID:           "mood-playlist",
			Title:        "Mood playlist",
			Description:  "Build a short playlist that meets the feeling where it is, then walks it somewhere lighter.",
			Category:     domain.CategoryCreative,
			Intensity:    domain.IntensityQuick,
			TimeEstimate: "10-15 minutes",
			Steps: []string{
				"Pick two songs that match how you feel right now",
				"Add three that are one shade lighter",
				"Listen in order while doing nothing else",
			},
			MoodTargets: []string{"sad", "numb"},
		},
		{
			ID:           "doodle-break",
			Title:        "Doodle break",
			Description:  "Low-stakes drawing to give your hands the problem instead of your head.",
			Category:     domain.CategoryCreative,
			Intensity:    domain.IntensityModerate,
			TimeEstimate: "15-20 minutes",
			Steps: []string{
				"Take paper and one pen; more tools means more decisions",
				"Fill the page with shapes, patterns, or whatever the pen wants",
				"No erasing and no finishing; the break ends when the page is full",
			},
			MoodTargets: []string{"anxious", "stressed"},
		},
		{
			ID:           "creative-project-hour",
			Title:        "Creative project hour",
			Description:  "A committed hour on something you make: cooking, music, code, paint, wood.",
			Category:     domain.CategoryCreative,
			Intensity:    domain.IntensityIntensive,
			TimeEstimate: "60 minutes",
			Steps: []string{
				"Pick a project that is already started, or start the smallest possible one",
				"Put your phone in another room",
				"Work for an hour; done is not the goal, absorbed is",
			},
			MoodTargets: []string{"numb", "sad", "hopeful"},
		},

		// --- self_care ---
		{
			ID:           "self-compassion-break",
			Title:        "Self-compassion break",
			Description:  "Speak to yourself the way you would to a friend who just got bad news.",
			Category:     domain.CategorySelfCare,
			Intensity:    domain.IntensityQuick,
			TimeEstimate: "5 minutes",
			Steps: []string{
				"Name what hurts in one plain sentence",
				"Remind yourself that rejection and loss are part of every life, not proof about you",
				"Put a hand on your chest and say what you'd say to a friend in your place",
			},
			MoodTargets: []string{"sad", "lonely", "overwhelmed"},
		},
		{
			ID:           "tea-ritual",
			Title:        "Tea ritual",
			Description:  "Make a warm drink slowly and on purpose; small ceremony, real comfort.",
			Category:     domain.CategorySelfCare,
			Intensity:    domain.IntensityQuick,
			TimeEstimate: "10 minutes",
			Steps: []string{
				"Make the drink without doing anything else at the same time",
				"Sit somewhere comfortable while it cools",
				"Drink it warm, not while scrolling",
			},
			MoodTargets: []string{"stressed", "sad"},
		},
		{
			ID:           "comfort-routine",
			Title:        "Comfort routine",
			Description:  "Stack three small comforts into one deliberate evening block.",
			Category:     domain.CategorySelfCare,
			Intensity:    domain.IntensityModerate,
			TimeEstimate: "30 minutes",
			Steps: []string{
				"Choose three: a shower, clean sheets, a familiar show, a favorite meal, soft clothes",
				"Do them back to back without negotiating with yourself",
				"Go to bed no later than your usual time",
			},
			MoodTargets: []string{"sad", "overwhelmed", "numb"},
		},
		{
			ID:           "digital-sunset",
			Title:        "Digital sunset",
			Description:  "End the scroll an hour before bed; most spirals are fed after dark.",
			Category:     domain.CategorySelfCare,
			Intensity:    domain.IntensityModerate,
			TimeEstimate: "60 minutes",
			Steps: []string{
				"Pick a shutdown time one hour before bed",
				"Charge your phone outside the bedroom",
				"Fill the hour with anything analog: paper, bath, stretching, tidying",
			},
			MoodTargets: []string{"anxious", "stressed"},
		},
		{
			ID:           "rest-day-plan",
			Title:        "Plan a rest day",
			Description:  "Design a genuinely restorative day off and defend it like an appointment.",
			Category:     domain.CategorySelfCare,
			Intensity:    domain.IntensityIntensive,
			TimeEstimate: "half a day",
			Steps: []string{
				"Block the time in your calendar now",
				"Plan one nourishing meal, one gentle activity, and zero obligations",
				"Tell one person so the plan has a witness",
			},
			MoodTargets: []string{"overwhelmed", "stressed", "sad"},
		},
	}
}
