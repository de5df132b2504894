// Package data holds the Common Core ELA reference tables the server
// seeds into the database on first start. The tables are trimmed to the
// reading strands the generator aligns passages against.
package data

import "litgen_backend/internal/model"

// GradeLevel mirrors the grade picker: kindergarten through grade 8.
type GradeLevel struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var GradeLevels = []GradeLevel{
	{ID: "k", Label: "Kindergarten"},
	{ID: "1", Label: "Grade 1"},
	{ID: "2", Label: "Grade 2"},
	{ID: "3", Label: "Grade 3"},
	{ID: "4", Label: "Grade 4"},
	{ID: "5", Label: "Grade 5"},
	{ID: "6", Label: "Grade 6"},
	{ID: "7", Label: "Grade 7"},
	{ID: "8", Label: "Grade 8"},
}

// StandardsByGrade lists each grade's standard categories with their
// standards nested. Category and standard IDs are stable strings
// ("3-rl", "3-rl-1") referenced by clients and stored on generated
// texts, so they must never be renumbered.
var StandardsByGrade = map[string][]model.StandardCategory{
	"k": {
		literature("k",
			std("k-rl-1", "RL.K.1", "With prompting and support, ask and answer questions about key details in a text."),
			std("k-rl-2", "RL.K.2", "With prompting and support, retell familiar stories, including key details."),
			std("k-rl-3", "RL.K.3", "With prompting and support, identify characters, settings, and major events in a story."),
		),
		informational("k",
			std("k-ri-1", "RI.K.1", "With prompting and support, ask and answer questions about key details in a text."),
			std("k-ri-2", "RI.K.2", "With prompting and support, identify the main topic and retell key details of a text."),
			std("k-ri-3", "RI.K.3", "With prompting and support, describe the connection between two individuals, events, ideas, or pieces of information in a text."),
		),
	},
	"1": {
		literature("1",
			std("1-rl-1", "RL.1.1", "Ask and answer questions about key details in a text."),
			std("1-rl-2", "RL.1.2", "Retell stories, including key details, and demonstrate understanding of their central message or lesson."),
			std("1-rl-3", "RL.1.3", "Describe characters, settings, and major events in a story, using key details."),
		),
		informational("1",
			std("1-ri-1", "RI.1.1", "Ask and answer questions about key details in a text."),
			std("1-ri-2", "RI.1.2", "Identify the main topic and retell key details of a text."),
			std("1-ri-3", "RI.1.3", "Describe the connection between two individuals, events, ideas, or pieces of information in a text."),
		),
	},
	"2": {
		literature("2",
			std("2-rl-1", "RL.2.1", "Ask and answer such questions as who, what, where, when, why, and how to demonstrate understanding of key details in a text."),
			std("2-rl-2", "RL.2.2", "Recount stories, including fables and folktales from diverse cultures, and determine their central message, lesson, or moral."),
			std("2-rl-3", "RL.2.3", "Describe how characters in a story respond to major events and challenges."),
		),
		informational("2",
			std("2-ri-1", "RI.2.1", "Ask and answer such questions as who, what, where, when, why, and how to demonstrate understanding of key details in a text."),
			std("2-ri-2", "RI.2.2", "Identify the main topic of a multiparagraph text as well as the focus of specific paragraphs within the text."),
			std("2-ri-3", "RI.2.3", "Describe the connection between a series of historical events, scientific ideas or concepts, or steps in technical procedures in a text."),
		),
	},
	"3": {
		literature("3",
			std("3-rl-1", "RL.3.1", "Ask and answer questions to demonstrate understanding of a text, referring explicitly to the text as the basis for the answers."),
			std("3-rl-2", "RL.3.2", "Recount stories, including fables, folktales, and myths from diverse cultures; determine the central message, lesson, or moral and explain how it is conveyed through key details in the text."),
			std("3-rl-3", "RL.3.3", "Describe characters in a story (e.g., their traits, motivations, or feelings) and explain how their actions contribute to the sequence of events."),
			std("3-rl-4", "RL.3.4", "Determine the meaning of words and phrases as they are used in a text, distinguishing literal from nonliteral language."),
		),
		informational("3",
			std("3-ri-1", "RI.3.1", "Ask and answer questions to demonstrate understanding of a text, referring explicitly to the text as the basis for the answers."),
			std("3-ri-2", "RI.3.2", "Determine the main idea of a text; recount the key details and explain how they support the main idea."),
			std("3-ri-3", "RI.3.3", "Describe the relationship between a series of historical events, scientific ideas or concepts, or steps in technical procedures in a text, using language that pertains to time, sequence, and cause/effect."),
		),
	},
	"4": {
		literature("4",
			std("4-rl-1", "RL.4.1", "Refer to details and examples in a text when explaining what the text says explicitly and when drawing inferences from the text."),
			std("4-rl-2", "RL.4.2", "Determine a theme of a story, drama, or poem from details in the text; summarize the text."),
			std("4-rl-3", "RL.4.3", "Describe in depth a character, setting, or event in a story or drama, drawing on specific details in the text (e.g., a character's thoughts, words, or actions)."),
		),
		informational("4",
			std("4-ri-1", "RI.4.1", "Refer to details and examples in a text when explaining what the text says explicitly and when drawing inferences from the text."),
			std("4-ri-2", "RI.4.2", "Determine the main idea of a text and explain how it is supported by key details; summarize the text."),
			std("4-ri-3", "RI.4.3", "Explain events, procedures, ideas, or concepts in a historical, scientific, or technical text, including what happened and why, based on specific information in the text."),
		),
	},
	"5": {
		literature("5",
			std("5-rl-1", "RL.5.1", "Quote accurately from a text when explaining what the text says explicitly and when drawing inferences from the text."),
			std("5-rl-2", "RL.5.2", "Determine a theme of a story, drama, or poem from details in the text, including how characters in a story or drama respond to challenges or how the speaker in a poem reflects upon a topic; summarize the text."),
			std("5-rl-3", "RL.5.3", "Compare and contrast two or more characters, settings, or events in a story or drama, drawing on specific details in the text (e.g., how characters interact)."),
		),
		informational("5",
			std("5-ri-1", "RI.5.1", "Quote accurately from a text when explaining what the text says explicitly and when drawing inferences from the text."),
			std("5-ri-2", "RI.5.2", "Determine two or more main ideas of a text and explain how they are supported by key details; summarize the text."),
			std("5-ri-3", "RI.5.3", "Explain the relationships or interactions between two or more individuals, events, ideas, or concepts in a historical, scientific, or technical text based on specific information in the text."),
		),
	},
	"6": {
		literature("6",
			std("6-rl-1", "RL.6.1", "Cite textual evidence to support analysis of what the text says explicitly as well as inferences drawn from the text."),
			std("6-rl-2", "RL.6.2", "Determine a theme or central idea of a text and how it is conveyed through particular details; provide a summary of the text distinct from personal opinions or judgments."),
			std("6-rl-3", "RL.6.3", "Describe how a particular story's or drama's plot unfolds in a series of episodes as well as how the characters respond or change as the plot moves toward a resolution."),
			std("6-rl-4", "RL.6.4", "Determine the meaning of words and phrases as they are used in a text, including figurative and connotative meanings; analyze the impact of a specific word choice on meaning and tone."),
		),
		informational("6",
			std("6-ri-1", "RI.6.1", "Cite textual evidence to support analysis of what the text says explicitly as well as inferences drawn from the text."),
			std("6-ri-2", "RI.6.2", "Determine a central idea of a text and how it is conveyed through particular details; provide a summary of the text distinct from personal opinions or judgments."),
			std("6-ri-3", "RI.6.3", "Analyze in detail how a key individual, event, or idea is introduced, illustrated, and elaborated in a text (e.g., through examples or anecdotes)."),
		),
	},
	"7": {
		literature("7",
			std("7-rl-1", "RL.7.1", "Cite several pieces of textual evidence to support analysis of what the text says explicitly as well as inferences drawn from the text."),
			std("7-rl-2", "RL.7.2", "Determine a theme or central idea of a text and analyze its development over the course of the text; provide an objective summary of the text."),
			std("7-rl-3", "RL.7.3", "Analyze how particular elements of a story or drama interact (e.g., how setting shapes the characters or plot)."),
		),
		informational("7",
			std("7-ri-1", "RI.7.1", "Cite several pieces of textual evidence to support analysis of what the text says explicitly as well as inferences drawn from the text."),
			std("7-ri-2", "RI.7.2", "Determine two or more central ideas in a text and analyze their development over the course of the text; provide an objective summary of the text."),
			std("7-ri-3", "RI.7.3", "Analyze the interactions between individuals, events, and ideas in a text (e.g., how ideas influence individuals or events, or how individuals influence ideas or events)."),
		),
	},
	"8": {
		literature("8",
			std("8-rl-1", "RL.8.1", "Cite the textual evidence that most strongly supports an analysis of what the text says explicitly as well as inferences drawn from the text."),
			std("8-rl-2", "RL.8.2", "Determine a theme or central idea of a text and analyze its development over the course of the text, including its relationship to the characters, setting, and plot; provide an objective summary of the text."),
			std("8-rl-3", "RL.8.3", "Analyze how particular lines of dialogue or incidents in a story or drama propel the action, reveal aspects of a character, or provoke a decision."),
		),
		informational("8",
			std("8-ri-1", "RI.8.1", "Cite the textual evidence that most strongly supports an analysis of what the text says explicitly as well as inferences drawn from the text."),
			std("8-ri-2", "RI.8.2", "Determine a central idea of a text and analyze its development over the course of the text, including its relationship to supporting ideas; provide an objective summary of the text."),
			std("8-ri-3", "RI.8.3", "Analyze how a text makes connections among and distinctions between individuals, ideas, or events (e.g., through comparisons, analogies, or categories)."),
		),
	},
}

func std(id, code, description string) model.Standard {
	return model.Standard{ID: id, Code: code, Description: description}
}

func literature(gradeID string, standards ...model.Standard) model.StandardCategory {
	return category(gradeID+"-rl", "Reading: Literature", "Key ideas, craft, and structure", "menu_book", "bg-primary-light", gradeID, standards)
}

func informational(gradeID string, standards ...model.Standard) model.StandardCategory {
	return category(gradeID+"-ri", "Reading: Informational Text", "Non-fiction reading standards", "article", "bg-secondary-light", gradeID, standards)
}

func category(id, title, description, icon, color, gradeID string, standards []model.Standard) model.StandardCategory {
	for i := range standards {
		standards[i].CategoryID = id
		standards[i].GradeID = gradeID
	}
	return model.StandardCategory{
		ID:          id,
		Title:       title,
		Description: description,
		Icon:        icon,
		Color:       color,
		GradeID:     gradeID,
		Standards:   standards,
	}
}
