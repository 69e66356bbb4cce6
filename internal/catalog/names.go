// Package catalog holds the compiled-in name and quote tables.
package catalog

import "github.com/f3rmion/prenoms/internal/prenoms"

// Names returns a fresh copy of the built-in name table. Keys are canonical
// (see prenoms.Canonical).
func Names() map[string]prenoms.NameRecord {
	out := make(map[string]prenoms.NameRecord, len(names))
	for k, v := range names {
		out[k] = v
	}
	return out
}

var names = map[string]prenoms.NameRecord{
	"Mohammed": {
		Meaning:     "Loué, digne de louanges",
		Origin:      "Arabe",
		Gender:      prenoms.Masculine,
		Description: "Le prénom du prophète de l'Islam, symbole de guidance et de sagesse.",
	},
	"Fatima": {
		Meaning:     "Celle qui sèvre, abstinente",
		Origin:      "Arabe",
		Gender:      prenoms.Feminine,
		Description: "Prénom de la fille du prophète Mohammed, symbole de pureté et de dévotion.",
	},
	"Gabriel": {
		Meaning:     "Force de Dieu",
		Origin:      "Hébraïque",
		Gender:      prenoms.Masculine,
		Description: "Archange messager, symbole de communication divine.",
	},
	"Gabrielle": {
		Meaning:     "Force de Dieu",
		Origin:      "Hébraïque",
		Gender:      prenoms.Feminine,
		Description: "Évoque la force et la communication divine.",
	},
	"Adam": {
		Meaning:     "Tiré de la terre",
		Origin:      "Hébraïque",
		Gender:      prenoms.Masculine,
		Description: "Le premier homme selon les traditions abrahamiques, symbole des origines.",
	},
	"Ali": {
		Meaning:     "Élevé, noble",
		Origin:      "Arabe",
		Gender:      prenoms.Masculine,
		Description: "Porté par le gendre du prophète, il évoque le courage et la loyauté.",
	},
	"Amina": {
		Meaning:     "Digne de confiance, fidèle",
		Origin:      "Arabe",
		Gender:      prenoms.Feminine,
		Description: "Prénom de la mère du prophète, symbole de loyauté et de douceur.",
	},
	"Aya": {
		Meaning:     "Signe, merveille",
		Origin:      "Arabe",
		Gender:      prenoms.Feminine,
		Description: "Désigne aussi un verset du Coran et évoque la beauté du miracle.",
	},
	"Omar": {
		Meaning:     "Celui qui vit longtemps",
		Origin:      "Arabe",
		Gender:      prenoms.Masculine,
		Description: "Associé au deuxième calife, figure de justice et de rigueur.",
	},
	"Youssef": {
		Meaning:     "Dieu ajoutera",
		Origin:      "Hébraïque",
		Gender:      prenoms.Masculine,
		Description: "Forme arabe de Joseph, figure de patience et de beauté.",
	},
	"Ibrahim": {
		Meaning:     "Père des multitudes",
		Origin:      "Hébraïque",
		Gender:      prenoms.Masculine,
		Description: "Forme arabe d'Abraham, patriarche de la foi.",
	},
	"Khadija": {
		Meaning:     "Née avant terme",
		Origin:      "Arabe",
		Gender:      prenoms.Feminine,
		Description: "Première épouse du prophète, femme de commerce respectée.",
	},
	"Yasmine": {
		Meaning:     "Fleur de jasmin",
		Origin:      "Persane",
		Gender:      prenoms.Feminine,
		Description: "Évoque le parfum, la délicatesse et la grâce.",
	},
	"Leïla": {
		Meaning:     "Nuit",
		Origin:      "Arabe",
		Gender:      prenoms.Feminine,
		Description: "Héroïne du poème Leïla et Majnoun, symbole d'amour absolu.",
	},
	"Nour": {
		Meaning:     "Lumière",
		Origin:      "Arabe",
		Gender:      prenoms.Feminine,
		Description: "Prénom lumineux, porteur d'espoir.",
	},
	"Lina": {
		Meaning:     "Tendre, délicate",
		Origin:      "Arabe",
		Gender:      prenoms.Feminine,
		Description: "Prénom court et doux, apprécié sur plusieurs continents.",
	},
	"Sarah": {
		Meaning:     "Princesse",
		Origin:      "Hébraïque",
		Gender:      prenoms.Feminine,
		Description: "Épouse d'Abraham, symbole de noblesse et de foi.",
	},
	"Marie": {
		Meaning:     "Aimée de Dieu",
		Origin:      "Hébraïque",
		Gender:      prenoms.Feminine,
		Description: "Mère de Jésus, longtemps le prénom le plus porté en France.",
	},
	"Louise": {
		Meaning:     "Combat glorieux",
		Origin:      "Germanique",
		Gender:      prenoms.Feminine,
		Description: "Féminin de Louis, élégant et intemporel.",
	},
	"Louis": {
		Meaning:     "Glorieux au combat",
		Origin:      "Germanique",
		Gender:      prenoms.Masculine,
		Description: "Prénom de nombreux rois de France.",
	},
	"Emma": {
		Meaning:     "Entière, universelle",
		Origin:      "Germanique",
		Gender:      prenoms.Feminine,
		Description: "Prénom doux et lumineux, très apprécié en Europe.",
	},
	"Léa": {
		Meaning:     "Gazelle, délicate",
		Origin:      "Hébraïque",
		Gender:      prenoms.Feminine,
		Description: "Épouse de Jacob dans la Bible, symbole de douceur et de fidélité.",
	},
	"Chloé": {
		Meaning:     "Jeune pousse verdoyante",
		Origin:      "Grecque",
		Gender:      prenoms.Feminine,
		Description: "Surnom de la déesse Déméter, symbole de renouveau.",
	},
	"Inès": {
		Meaning:     "Pure, chaste",
		Origin:      "Grecque",
		Gender:      prenoms.Feminine,
		Description: "Forme espagnole d'Agnès, empreinte de douceur.",
	},
	"Zoé": {
		Meaning:     "Vie",
		Origin:      "Grecque",
		Gender:      prenoms.Feminine,
		Description: "Exprime la vitalité et la joie de vivre.",
	},
	"Sofia": {
		Meaning:     "Sagesse",
		Origin:      "Grecque",
		Gender:      prenoms.Feminine,
		Description: "Évoque la connaissance et la réflexion.",
	},
	"Camille": {
		Meaning:     "Servante lors des cérémonies",
		Origin:      "Latine",
		Gender:      prenoms.Feminine,
		Description: "Prénom mixte, porté par l'artiste Camille Claudel.",
	},
	"Rose": {
		Meaning:     "La fleur",
		Origin:      "Latine",
		Gender:      prenoms.Feminine,
		Description: "Symbole d'amour et de beauté.",
	},
	"Adèle": {
		Meaning:     "Noble",
		Origin:      "Germanique",
		Gender:      prenoms.Feminine,
		Description: "Prénom ancien revenu à la mode, synonyme d'élégance.",
	},
	"Lucas": {
		Meaning:     "Lumière",
		Origin:      "Latine",
		Gender:      prenoms.Masculine,
		Description: "L'évangéliste Luc, médecin et peintre selon la tradition.",
	},
	"Hugo": {
		Meaning:     "Esprit, intelligence",
		Origin:      "Germanique",
		Gender:      prenoms.Masculine,
		Description: "Immortalisé par Victor Hugo.",
	},
	"Arthur": {
		Meaning:     "Ours",
		Origin:      "Celtique",
		Gender:      prenoms.Masculine,
		Description: "Le roi légendaire de la Table ronde.",
	},
	"Jules": {
		Meaning:     "Consacré à Jupiter",
		Origin:      "Latine",
		Gender:      prenoms.Masculine,
		Description: "Hommage à Jules César et à Jules Verne.",
	},
	"Nathan": {
		Meaning:     "Il a donné",
		Origin:      "Hébraïque",
		Gender:      prenoms.Masculine,
		Description: "Prophète et conseiller du roi David.",
	},
	"Raphaël": {
		Meaning:     "Dieu guérit",
		Origin:      "Hébraïque",
		Gender:      prenoms.Masculine,
		Description: "Archange guérisseur, protecteur des voyageurs.",
	},
	"Elias": {
		Meaning:     "Mon Dieu est l'Éternel",
		Origin:      "Hébraïque",
		Gender:      prenoms.Masculine,
		Description: "Forme grecque d'Élie, prophète du feu.",
	},
	"Thomas": {
		Meaning:     "Jumeau",
		Origin:      "Araméenne",
		Gender:      prenoms.Masculine,
		Description: "Apôtre connu pour son besoin de preuves.",
	},
	"Paul": {
		Meaning:     "Petit, humble",
		Origin:      "Latine",
		Gender:      prenoms.Masculine,
		Description: "L'apôtre des nations, grand voyageur.",
	},
	"Pierre": {
		Meaning:     "Roc, pierre",
		Origin:      "Grecque",
		Gender:      prenoms.Masculine,
		Description: "L'apôtre sur qui fut bâtie l'Église.",
	},
}
