// Package fallback provides deterministic, curated question batches used
// whenever the generative path fails or produces an invalid or unsafe
// batch. The pipeline never stalls on generation failure; the price is
// repetitive content for topics outside the curated categories, which is
// an accepted trade-off.
package fallback

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizzy/internal/quiz"
)

// Build returns a structurally valid draft batch of exactly batchSize
// questions for the topic. Deterministic given the topic name and
// policy. Vocabulary policies always get the voice vocabulary set.
// Other policies route by topic-name keyword to a curated set, falling
// back to generic reflective questions parameterized by the topic's own
// name. The vocabulary set is reachable only through its policy so its
// voice questions never leak into a mixed-type batch.
//
// This content is fixed and hand-reviewed, so it does not pass through
// the safety filter on the generated-content path.
func Build(topic quiz.Topic, batchSize int, policyName string) []quiz.Draft {
	if policyName == "vocabulary" {
		return sized(vocabularySet(), batchSize, topic.Name)
	}

	name := strings.ToLower(topic.Name)
	for _, cat := range categories {
		for _, kw := range cat.keywords {
			if strings.Contains(name, kw) {
				return sized(cat.set(), batchSize, topic.Name)
			}
		}
	}

	return sized(genericSet(topic.Name), batchSize, topic.Name)
}

// sized trims or tops up a curated set to the exact batch size. Curated
// sets match the policy sizes, so the top-up path only runs when a
// policy shrinks below a set.
func sized(set []quiz.Draft, batchSize int, topicName string) []quiz.Draft {
	if len(set) >= batchSize {
		return set[:batchSize]
	}
	for _, g := range genericSet(topicName) {
		if len(set) == batchSize {
			break
		}
		set = append(set, g)
	}
	return set
}

type category struct {
	keywords []string
	set      func() []quiz.Draft
}

var categories = []category{
	{keywords: []string{"math", "arithmetic", "number", "counting"}, set: mathSet},
	{keywords: []string{"animal", "biology", "nature", "wildlife"}, set: animalSet},
	{keywords: []string{"color", "colour", "rainbow"}, set: colorSet},
	{keywords: []string{"earth", "space", "science", "planet", "weather"}, set: earthScienceSet},
	{keywords: []string{"geography", "world", "country", "map"}, set: geographySet},
}

func mc(text string, options []string, answer, fact string) quiz.Draft {
	return quiz.Draft{Text: text, Type: quiz.TypeMultipleChoice, Options: options, CorrectAnswer: answer, FunFact: fact, Difficulty: 1}
}

func tf(text, answer, fact string) quiz.Draft {
	return quiz.Draft{Text: text, Type: quiz.TypeTrueFalse, Options: []string{"True", "False"}, CorrectAnswer: answer, FunFact: fact, Difficulty: 1}
}

func yn(text, answer, fact string) quiz.Draft {
	return quiz.Draft{Text: text, Type: quiz.TypeYesNo, Options: []string{"Yes", "No"}, CorrectAnswer: answer, FunFact: fact, Difficulty: 1}
}

func fb(text, answer, fact string) quiz.Draft {
	return quiz.Draft{Text: text, Type: quiz.TypeFillBlank, CorrectAnswer: answer, FunFact: fact, Difficulty: 1}
}

func voice(text, answer, fact string) quiz.Draft {
	return quiz.Draft{Text: text, Type: quiz.TypeVoiceInput, CorrectAnswer: answer, FunFact: fact, Difficulty: 1}
}

func animalSet() []quiz.Draft {
	return []quiz.Draft{
		mc("Which animal is known as the 'King of the Jungle'?",
			[]string{"Tiger", "Lion", "Elephant", "Bear"}, "Lion",
			"Lions are called the 'King of the Jungle' even though they actually live in grasslands!"),
		mc("How many legs does a spider have?",
			[]string{"6", "8", "10", "12"}, "8",
			"All spiders have 8 legs, which makes them arachnids, not insects!"),
		mc("What do pandas love to eat?",
			[]string{"Fish", "Meat", "Bamboo", "Berries"}, "Bamboo",
			"Pandas eat bamboo almost exclusively - up to 40 pounds per day!"),
		tf("A chameleon can change its color.", "True",
			"Chameleons change color to communicate, regulate temperature, and camouflage!"),
		mc("What is the largest mammal in the world?",
			[]string{"Elephant", "Blue Whale", "Giraffe", "Hippo"}, "Blue Whale",
			"Blue whales can grow up to 100 feet long and weigh as much as 30 elephants!"),
		mc("How many hearts does an octopus have?",
			[]string{"1", "2", "3", "4"}, "3",
			"Octopuses have 3 hearts! Two pump blood to the gills, and one pumps blood to the body."),
		yn("Can penguins fly in the air?", "No",
			"Penguins can't fly in the air, but they're amazing 'fliers' underwater!"),
		fb("Koalas mainly eat ____ leaves.", "eucalyptus",
			"Koalas eat eucalyptus leaves almost exclusively and sleep 18-22 hours a day!"),
		mc("Which animal has the longest neck?",
			[]string{"Horse", "Ostrich", "Giraffe", "Swan"}, "Giraffe",
			"A giraffe's neck can be up to 6 feet long and weighs about 600 pounds!"),
		fb("The sound a cow makes is ____.", "moo",
			"Cows say 'moo' and can actually have different accents depending on where they live!"),
	}
}

func mathSet() []quiz.Draft {
	return []quiz.Draft{
		mc("What is 5 + 3?", []string{"6", "7", "8", "9"}, "8",
			"5 + 3 = 8. You can count on your fingers to check!"),
		fb("The number that comes after 9 is ____.", "10",
			"After 9 comes 10, which is a special number with two digits!"),
		mc("What is 10 - 4?", []string{"5", "6", "7", "8"}, "6",
			"10 - 4 = 6. Try counting backwards from 10!"),
		mc("How many sides does a triangle have?", []string{"2", "3", "4", "5"}, "3",
			"A triangle always has exactly 3 sides and 3 corners!"),
		mc("What is 2 x 3?", []string{"4", "5", "6", "7"}, "6",
			"2 x 3 = 6. This means 2 groups of 3, or 3 + 3!"),
		mc("Which number is the smallest?", []string{"15", "3", "8", "12"}, "3",
			"3 is the smallest number here. The others are all bigger!"),
		fb("Half of 8 is ____.", "4",
			"Half of 8 is 4. You can split 8 into two equal groups of 4!"),
		mc("How many corners does a square have?", []string{"2", "3", "4", "5"}, "4",
			"A square has 4 corners and 4 equal sides!"),
		tf("7 + 2 equals 9.", "True",
			"7 + 2 = 9. You can use your fingers to count up from 7!"),
		yn("Is 6 bigger than 4?", "Yes",
			"6 is bigger than 4. The number 6 comes after 4 when counting!"),
	}
}

func colorSet() []quiz.Draft {
	return []quiz.Draft{
		mc("What color do you get when you mix red and yellow?",
			[]string{"Purple", "Orange", "Green", "Blue"}, "Orange",
			"Red + Yellow = Orange! Like the color of a beautiful sunset!"),
		mc("What color is the sun?", []string{"Blue", "Green", "Yellow", "Purple"}, "Yellow",
			"The sun appears yellow to us! It gives us light and warmth."),
		mc("What color do you get when you mix blue and yellow?",
			[]string{"Orange", "Purple", "Green", "Pink"}, "Green",
			"Blue + Yellow = Green! Like the color of grass and leaves!"),
		fb("Grass is usually the color ____.", "green",
			"Grass is green because of chlorophyll, which helps plants make food from sunlight!"),
		mc("How many colors are in a rainbow?", []string{"5", "6", "7", "8"}, "7",
			"A rainbow has 7 colors: red, orange, yellow, green, blue, indigo, and violet!"),
		tf("Mixing red and blue makes purple.", "True",
			"Red + Blue = Purple! It was once so rare that only royalty wore it."),
		yn("Is white the same as black?", "No",
			"White reflects all colors of light, while black absorbs them all!"),
		mc("What are the three primary colors?",
			[]string{"Red, Yellow, Blue", "Green, Orange, Purple", "Red, Green, Blue", "Pink, Yellow, Black"},
			"Red, Yellow, Blue",
			"Primary colors can't be made by mixing other colors - every other color comes from them!"),
		fb("The color of a ripe banana is ____.", "yellow",
			"Bananas turn from green to yellow as they ripen and get sweeter!"),
		tf("An orange fruit and the color orange share the same name.", "True",
			"The fruit came first - the color orange was named after it!"),
	}
}

func earthScienceSet() []quiz.Draft {
	return []quiz.Draft{
		tf("The sun is a star.", "True",
			"The sun is the closest star to Earth!"),
		mc("What do plants need to make their own food?",
			[]string{"Sunlight", "Candy", "Plastic", "Metal"}, "Sunlight",
			"Plants use sunlight, water, and air to make food - this is called photosynthesis!"),
		mc("How many planets are in our solar system?",
			[]string{"7", "8", "9", "10"}, "8",
			"Our solar system has 8 planets, and Earth is the third one from the sun!"),
		fb("Water falling from clouds is called ____.", "rain",
			"Rain is part of the water cycle - water goes up as vapor and comes back down as drops!"),
		yn("Does the moon make its own light?", "No",
			"The moon reflects light from the sun, like a giant mirror in the sky!"),
		mc("What is the biggest planet in our solar system?",
			[]string{"Earth", "Mars", "Jupiter", "Saturn"}, "Jupiter",
			"Jupiter is so big that more than 1,300 Earths could fit inside it!"),
		tf("Ice is frozen water.", "True",
			"Water freezes into ice at 0 degrees Celsius!"),
		fb("The season when leaves fall from trees is called ____.", "fall",
			"In fall, trees drop their leaves to save energy for winter!"),
		yn("Do volcanoes exist on Earth?", "Yes",
			"Earth has about 1,500 active volcanoes - melted rock from deep inside comes out of them!"),
		mc("Which of these is a source of light?",
			[]string{"The moon", "A rock", "The sun", "A shadow"}, "The sun",
			"The sun makes its own light, which travels about 8 minutes to reach Earth!"),
	}
}

func geographySet() []quiz.Draft {
	return []quiz.Draft{
		mc("What is the largest ocean on Earth?",
			[]string{"Atlantic", "Indian", "Arctic", "Pacific"}, "Pacific",
			"The Pacific Ocean covers more area than all the land on Earth combined!"),
		mc("How many continents are there?",
			[]string{"5", "6", "7", "8"}, "7",
			"The 7 continents are Africa, Antarctica, Asia, Australia, Europe, North America, and South America!"),
		tf("Antarctica is the coldest continent.", "True",
			"Antarctica is so cold that it almost never rains there - it's a frozen desert!"),
		fb("The imaginary line around the middle of the Earth is called the ____.", "equator",
			"Countries near the equator are warm all year round!"),
		yn("Is a desert usually wet?", "No",
			"Deserts are the driest places on Earth - some get almost no rain for years!"),
		mc("Which is the longest river in the world?",
			[]string{"Amazon", "Nile", "Mississippi", "Ganges"}, "Nile",
			"The Nile river in Africa is about 6,650 kilometers long!"),
		mc("What is the tallest mountain on Earth?",
			[]string{"K2", "Mount Everest", "Kilimanjaro", "Denali"}, "Mount Everest",
			"Mount Everest is so tall that its peak reaches into the jet stream!"),
		fb("A piece of land surrounded by water on all sides is called an ____.", "island",
			"Greenland is the biggest island in the world!"),
		tf("Maps show where places are.", "True",
			"People have been drawing maps for thousands of years - long before satellites!"),
		yn("Can you walk from one continent to another across an ocean?", "No",
			"Oceans separate most continents, which is why explorers needed ships!"),
	}
}

func vocabularySet() []quiz.Draft {
	return []quiz.Draft{
		voice("What is the Telugu word for 'Mother'?", "అమ్మ",
			"'అమ్మ' (Amma) is often one of the first words Telugu children learn to say!"),
		voice("What is the Telugu word for 'Water'?", "నీరు",
			"Water is called 'నీరు' (Neeru) in Telugu, and it's essential for all living things!"),
		voice("What is the Telugu word for 'Father'?", "నాన్న",
			"'నాన్న' (Nanna) means father in Telugu!"),
		voice("What is the Telugu word for 'Sun'?", "సూర్యుడు",
			"The sun is called 'సూర్యుడు' (Suryudu) in Telugu!"),
		voice("What is the Telugu word for 'Milk'?", "పాలు",
			"Milk is called 'పాలు' (Paalu) in Telugu and helps build strong bones!"),
	}
}

// genericSet produces always-true reflective questions parameterized by
// the topic name. The guarantee is that the pipeline never stalls, not
// that unrecognized topics get great content.
func genericSet(topicName string) []quiz.Draft {
	templates := []func(string) quiz.Draft{
		func(n string) quiz.Draft {
			return yn(fmt.Sprintf("Can we learn new things about %s?", n), "Yes",
				fmt.Sprintf("There is always something new to discover about %s!", n))
		},
		func(n string) quiz.Draft {
			return tf(fmt.Sprintf("Asking questions is a good way to learn about %s.", n), "True",
				"Curious people ask lots of questions - that's how discoveries are made!")
		},
		func(n string) quiz.Draft {
			return mc(fmt.Sprintf("What is a good way to learn more about %s?", n),
				[]string{"Reading books", "Never asking questions", "Giving up", "Ignoring it"},
				"Reading books",
				"Books are like treasure chests full of knowledge!")
		},
		func(n string) quiz.Draft {
			return yn(fmt.Sprintf("Is it fun to share what you know about %s with friends?", n), "Yes",
				"Teaching others is one of the best ways to remember what you learned!")
		},
		func(n string) quiz.Draft {
			return tf(fmt.Sprintf("Practicing helps you get better at %s.", n), "True",
				"Practice makes progress - even experts started as beginners!")
		},
	}

	var set []quiz.Draft
	for i := 0; len(set) < 10; i++ {
		set = append(set, templates[i%len(templates)](topicName))
	}
	return set
}
