package catalog

import "github.com/f3rmion/prenoms/internal/quotes"

// Quotes returns a fresh copy of the built-in quote categories.
func Quotes() []quotes.Category {
	out := make([]quotes.Category, len(categories))
	for i, c := range categories {
		out[i] = quotes.Category{Name: c.Name, Quotes: append([]string(nil), c.Quotes...)}
	}
	return out
}

var categories = []quotes.Category{
	{
		Name: "Motivation",
		Quotes: []string{
			"Votre force surpasse tous les obstacles.",
			"Chaque pas que vous faites vous rapproche de vos rêves.",
			"Vous avez en vous tout ce qu'il faut pour réussir.",
			"Votre détermination est une flamme que rien n'éteint.",
			"Aujourd'hui est le premier jour de votre plus belle victoire.",
			"Votre courage inspire tous ceux qui croisent votre route.",
			"Les difficultés ne font que révéler votre grandeur.",
			"Vous transformez chaque défi en opportunité.",
			"Votre persévérance écrit déjà votre succès.",
			"Rien ne résiste à votre volonté.",
			"Vous êtes plus fort que vous ne l'imaginez.",
			"Votre énergie donne vie à vos ambitions.",
		},
	},
	{
		Name: "Amour",
		Quotes: []string{
			"Votre cœur rayonne d'une lumière infinie.",
			"Vous méritez un amour aussi grand que votre générosité.",
			"Votre tendresse illumine la vie de ceux qui vous entourent.",
			"L'amour que vous donnez vous revient toujours multiplié.",
			"Votre sourire est un cadeau pour le monde.",
			"Vous aimez avec une sincérité rare et précieuse.",
			"Votre bienveillance tisse des liens indestructibles.",
			"Chaque geste d'amour de votre part change une vie.",
			"Votre présence est une source de paix et de chaleur.",
			"Vous êtes aimé bien plus que vous ne le savez.",
			"Votre cœur sait reconnaître la beauté chez les autres.",
		},
	},
	{
		Name: "Sagesse",
		Quotes: []string{
			"Votre sagesse guide ceux qui vous entourent.",
			"Vous savez écouter le silence et y trouver des réponses.",
			"Votre patience est la marque d'un esprit éclairé.",
			"Chaque expérience enrichit votre profonde compréhension du monde.",
			"Vous choisissez vos mots avec la justesse des sages.",
			"Votre calme est une force que beaucoup vous envient.",
			"Vous voyez au-delà des apparences.",
			"Votre humilité rend votre savoir encore plus précieux.",
			"Vous apprenez de chaque jour et partagez ce que vous savez.",
			"Votre regard apaisé éclaire les situations les plus confuses.",
			"La sérénité que vous cultivez est votre plus grand trésor.",
		},
	},
}
