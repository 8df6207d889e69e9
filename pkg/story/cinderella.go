package story

// Built-in Cinderella dataset. The chapter summaries give the backend
// context for question asking; they are never spoken verbatim.

func cinderella() *Story {
	return NewStory("cinderella", "Cinderella",
		&Chapter{
			ID:   "1",
			Name: "Dust and Dishes",
			Summary: `Cinderella lives in a house where she does all the work - sweeping floors, scrubbing pots,
and helping her two stepsisters Olga and Bertha. Her stepmother Madam Gertrude gives orders constantly.
Cinderella's only friends are Pebble the cheeky squirrel and Tuff the fast-talking sparrow.
Tuff ate a chocolate medal and calls it a victory. Pebble calls himself the 'kitchen hero'.
Despite all the hard work, Cinderella's heart is full of hope. She dreams of one quiet day just for herself.
Her name comes from the cinders and ash she works with.`,
			Questions: []Question{
				{1, "Who is Cinderella's cheeky squirrel friend?", []string{"Pebble"}},
				{2, "What bird friend talks very fast?", []string{"Tuff"}},
				{3, "What did Tuff eat that was made of chocolate?", []string{"A medal", "medal", "chocolate medal"}},
				{4, "What does Cinderella use to clean the floors?", []string{"A broom", "broom"}},
				{5, "Who is the mean lady giving orders?", []string{"Madam Gertrude", "Gertrude", "madam"}},
				{6, "How many sisters does Cinderella have?", []string{"Two", "2", "two sisters"}},
				{7, "What does Olga have in her messy hair?", []string{"Bird's nest", "birds nest", "nest", "bird nest"}},
				{8, "What is Cinderella's heart full of?", []string{"Hope"}},
				{9, "What does Pebble call himself?", []string{"Kitchen hero", "hero"}},
				{10, "What does Cinderella want one of?", []string{"Quiet day", "quiet", "peace", "peaceful day"}},
			},
		},
		&Chapter{
			ID:   "2",
			Name: "The Royal Invitation",
			Summary: `A Royal Messenger arrives at the door with a loud trumpet announcing a grand ball at the palace!
Prince Leo is inviting everyone. The letter has a gold seal. Madam Gertrude and the sisters fly down
the stairs like overstuffed teapots in excitement. Bertha accidentally tries to wear Olga's shoes.
Pebble was counting acorns on the window when the messenger came. The messenger played his trumpet loudly.
Cinderella wishes she could go to the palace too. Pebble and Tuff tell her she has spirit and kindness.
A tiny hope begins to grow in Cinderella's heart - what if she could go to the ball?`,
			Questions: []Question{
				{1, "Who brought a loud trumpet to the door?", []string{"Royal Messenger", "messenger", "royal"}},
				{2, "What is the fancy palace party called?", []string{"The Ball", "ball"}},
				{3, "What is the name of the kind Prince?", []string{"Prince Leo", "Leo"}},
				{4, "What did the sisters fly down like?", []string{"Teapots", "teapot"}},
				{5, "What did Bertha try to put on?", []string{"Olga's shoes", "shoes", "Olga shoes"}},
				{6, "What was Pebble counting on the window?", []string{"Acorns", "acorn"}},
				{7, "What did the messenger play?", []string{"A trumpet", "trumpet"}},
				{8, "What color was the special letter's seal?", []string{"Gold", "golden"}},
				{9, "Where did Cinderella wish she could go?", []string{"The Palace", "palace"}},
				{10, "What did the birds say Cinderella has?", []string{"Spirit"}},
			},
		},
		&Chapter{
			ID:   "3",
			Name: "The Garden and the Wish",
			Summary: `After the family leaves for the ball, Cinderella goes to the garden to be alone.
She sits near a big orange pumpkin. The air smells of lavender flowers. Pebble thinks it's like a soap opera!
Tuff was panicking about the whole situation. Cinderella just wants to be seen - not ignored anymore.
Then something magical happens - the Fairy Godmother appears in a silver glow!
She heard Cinderella's wish. She offers Cinderella stars and asks if she wants to go to the ball.
Cinderella says 'Yes' to the magic, and everything is about to change!`,
			Questions: []Question{
				{1, "Where did Cinderella go to be alone?", []string{"The Garden", "garden"}},
				{2, "What big orange vegetable was near her?", []string{"A pumpkin", "pumpkin"}},
				{3, "Who appeared in a silver glow?", []string{"Fairy Godmother", "godmother", "fairy"}},
				{4, "What flower did the air smell like?", []string{"Lavender"}},
				{5, "What did the Fairy Godmother hear?", []string{"A wish", "wish"}},
				{6, "What did Cinderella want to be?", []string{"Seen"}},
				{7, "What did the squirrel think this was?", []string{"Soap opera", "soap", "opera"}},
				{8, "Who was panicking in the garden?", []string{"Tuff"}},
				{9, "What did the lady offer Cinderella?", []string{"Stars", "star"}},
				{10, "What did Cinderella say to the magic?", []string{"Yes"}},
			},
		},
		&Chapter{
			ID:   "4",
			Name: "The Ball",
			Summary: `The Fairy Godmother works her magic! The pumpkin turns into a shining carriage.
The little mice become beautiful horses. A sleepy lizard becomes the driver with a top hat!
Cinderella gets a sky blue dress and glass slippers made of clear glass, strong as hope.
But the magic stops at midnight - when the clock strikes twelve, everything turns back!
At the ball, Prince Leo finds Cinderella. They dance and talk on the balcony.
But the clock strikes midnight! Cinderella runs away, leaving one glass slipper on the stairs.`,
			Questions: []Question{
				{1, "What did the pumpkin turn into?", []string{"A carriage", "carriage"}},
				{2, "What did the little mice become?", []string{"Horses", "horse"}},
				{3, "What animal became the driver?", []string{"A lizard", "lizard"}},
				{4, "What were Cinderella's shoes made of?", []string{"Glass"}},
				{5, "What time does the magic stop?", []string{"Midnight", "12", "twelve"}},
				{6, "Who did Cinderella dance with?", []string{"Prince Leo", "Leo", "prince", "the prince"}},
				{7, "Where did they go for a quiet talk?", []string{"The balcony", "balcony"}},
				{8, "What did Cinderella leave on the stairs?", []string{"One slipper", "slipper", "shoe", "glass slipper"}},
				{9, "What color was her dress?", []string{"Sky blue", "blue"}},
				{10, "How did she leave the party?", []string{"Running", "run", "ran"}},
			},
		},
		&Chapter{
			ID:   "5",
			Name: "Whispers and Wonders",
			Summary: `The next morning, Cinderella is back in the kitchen with flour on her hands, keeping her secret.
The ball is her secret! Pebble and Tuff do a funny reenactment - Pebble pretends to be a chandelier!
The stepsisters talk about the mystery girl at the ball. Bertha tripped at the party!
Tuff ate a napkin at the table. The Prince is looking for the mystery girl.
The sisters want to copy her style. Prince Leo looked at Cinderella like he actually saw her.
In the garden, Cinderella touches a rose and knows she was the beginning of a story.`,
			Questions: []Question{
				{1, "What secret did Cinderella have?", []string{"The ball", "ball"}},
				{2, "What did Pebble pretend to be?", []string{"A chandelier", "chandelier"}},
				{3, "Who tripped at the big party?", []string{"Bertha"}},
				{4, "What was on Cinderella's hands in the morning?", []string{"Flour"}},
				{5, "Who is the Prince looking for?", []string{"Mystery girl", "mystery", "girl"}},
				{6, "What did the sisters want to copy?", []string{"Her style", "style"}},
				{7, "What did Tuff eat at the table?", []string{"A napkin", "napkin"}},
				{8, "How did Prince Leo look at her?", []string{"He saw her", "saw her", "he saw"}},
				{9, "What did Cinderella touch in the garden?", []string{"A rose", "rose"}},
				{10, "What was Cinderella the beginning of?", []string{"A story", "story"}},
			},
		},
		&Chapter{
			ID:   "6",
			Name: "Before the Knock",
			Summary: `The Prince is coming with the glass slipper wrapped in velvet! He's searching for the mystery girl.
Tuff heard a knock at the door - but it was just a bird at first. They even tried the shoe on a goat!
Even the teapot looked nervous. An old woman tells Cinderella she has a secret and is glowing.
Tuff (the sparrow) says Cinderella has layers - she's more than just a kitchen maid.
Cinderella waits in the kitchen, scared of being seen but also hoping to be found.
Something is about to happen at the door - a knock. The Prince is coming to the house!`,
			Questions: []Question{
				{1, "What is the Prince carrying in velvet?", []string{"Glass slipper", "slipper", "shoe"}},
				{2, "Who heard a bird knock on the door?", []string{"Tuff"}},
				{3, "What animal did they try the shoe on?", []string{"A goat", "goat"}},
				{4, "Who looked very nervous like a teapot?", []string{"The teapot", "teapot"}},
				{5, "What did the old woman say Cinderella has?", []string{"A secret", "secret"}},
				{6, "What is the sparrow's name?", []string{"Tuff"}},
				{7, "Where was Cinderella waiting?", []string{"The kitchen", "kitchen"}},
				{8, "What does Tuff say Cinderella has?", []string{"Layers", "layer"}},
				{9, "What was about to happen at the door?", []string{"A knock", "knock"}},
				{10, "Who is coming to the house?", []string{"The Prince", "prince", "Prince Leo", "Leo"}},
			},
		},
		&Chapter{
			ID:   "7",
			Name: "The Slipper Fits",
			Summary: `The glass slipper arrives! Olga tries first - she even puts butter on her toes to make it fit!
Bertha's foot turns blue from squeezing so hard! Madam Gertrude even makes a fake shoe from cardboard!
Sir Hector Grey says 'toe magic is not an accredited field' when Gertrude claims tricks.
Then Cinderella steps out of the kitchen. She tries the slipper - and it fits perfectly!
The curtains applauded! Tuff wants to eat pudding to celebrate. Prince Leo knew it was her all along.
They walk outside together. Cinderella finally asks to be seen, and she is!`,
			Questions: []Question{
				{1, "What did Olga put on her toes?", []string{"Butter"}},
				{2, "What color did Bertha's foot turn?", []string{"A blue shade", "blue"}},
				{3, "What was the fake shoe made of?", []string{"Cardboard"}},
				{4, "Who stepped out of the kitchen?", []string{"Cinderella"}},
				{5, "What did the curtains do?", []string{"Applauded", "clapped", "applaud"}},
				{6, "What does Tuff want to eat now?", []string{"Pudding"}},
				{7, "Who tried the shoe last?", []string{"Cinderella"}},
				{8, "What field did the advisor say isn't real?", []string{"Toe magic", "toe"}},
				{9, "Who knew it was her?", []string{"Prince Leo", "Leo", "prince", "the prince"}},
				{10, "Where did they walk together?", []string{"Outside"}},
			},
		},
		&Chapter{
			ID:   "8",
			Name: "The Proposal & The Party",
			Summary: `Prince Leo proposes to Cinderella in the garden! She says yes! The whole kingdom celebrates.
There's a special wedding cake made of acorns (for Pebble!). A little boy gives Cinderella a crooked wooden spoon.
Queen Elena adjusts Cinderella's veil with kindness. Pebble wears a tiny sash made of royal napkin!
The mice wear tiny hats on their heads. King Bramble keeps asking where the cheese is!
Prince Leo and Cinderella promise to choose each other every day. Children chase fireflies at the party.
To Prince Leo, Cinderella looks like hope. And for them both, a new chapter is starting!`,
			Questions: []Question{
				{1, "What was the special cake made of?", []string{"Acorns", "acorn"}},
				{2, "What did the little boy give Cinderella?", []string{"A spoon", "spoon"}},
				{3, "Who adjusted Cinderella's veil?", []string{"Queen Elena", "Elena", "queen"}},
				{4, "What did Pebble wear to the wedding?", []string{"A sash", "sash"}},
				{5, "What did the mice wear on their heads?", []string{"Tiny hats", "hats", "hat"}},
				{6, "What did they promise to do every day?", []string{"Choose"}},
				{7, "What did the children chase?", []string{"Fireflies", "firefly"}},
				{8, "What did King Bramble want to find?", []string{"Cheese"}},
				{9, "How did Cinderella look to the Prince?", []string{"Like hope", "hope"}},
				{10, "What was starting for them?", []string{"New chapter", "chapter", "new"}},
			},
		},
	)
}
