package wiki

import "regexp"

// Rule maps a whole-word, case-insensitive title pattern to a target category.
type Rule struct {
	Pattern  *regexp.Regexp
	Category string
}

// DefaultTaxonomy is the curated title taxonomy, in evaluation order. The
// wording mirrors the original wiki's own category names. Every matching rule
// applies; a title naming both a shield and a quest lands in both categories.
func DefaultTaxonomy() []Rule {
	return []Rule{
		rule(`(Armor|Armors|Cloth|Leather|Plate|Shield|Shields|Jewelry|Equipment Set)s?`, "Equipment"),
		rule(`(Claws|Crossbows|Dual Swords|Knuckles|Launcher|Staves|Two Handed|One Handed|Wands)`, "Weapons"),
		rule(`(Quest|Quest:|Quests)`, "Quests"),
		rule(`(Monster|Monsters|MOB|Drop|Mob item drops)`, "Monsters"),
		rule(`(Skill|Skills|DNA)`, "Skills"),
		rule(`(Stat|Stats|EXP|EXP Chart|Level|Levels|Leveling|Leveling Spots)`, "Character"),
		rule(`(World|Map|World Map|Place|Places|Dungeon|Dungeons)`, "World"),
		rule(`(Client|Patch|Patches|Downloads?)`, "Downloads"),
		rule(`(Xeons|Waters|Consumables?|Potion|Potions|Elixir|Elixirs)`, "Consumables"),
		rule(`(Build|Builds|Guide|Guides?)`, "Guides"),
		rule(`(Class|Rogue|Warrior|Shaman|Mystic|Templar|Radiant|Assassin|Avenger|Berserker|Commander|Defender|Defiler|Dominator|Druid|Elementalist|Forsaker|Protector|Shadow Runner|Soul Hunter)`, "Classes"),
	}
}

// DefaultFeaturedRoots is the curated root order for the Featured section of
// the category index. These nodes are force-created before rendering so the
// section is stable even when a snapshot has no members for them.
func DefaultFeaturedRoots() []string {
	return []string{
		"Equipment", "Armors", "Jewelry", "Shields", "Weapons",
		"Classes", "Skills", "Quests", "Monsters", "Character",
		"World", "Downloads", "Consumables", "Guides",
	}
}

// CompileRule builds a case-insensitive whole-word rule from a bare pattern.
func CompileRule(pattern, category string) (Rule, error) {
	re, err := regexp.Compile(`(?i)\b(?:` + pattern + `)\b`)
	if err != nil {
		return Rule{}, err
	}
	return Rule{Pattern: re, Category: category}, nil
}

func rule(pattern, category string) Rule {
	return Rule{
		Pattern:  regexp.MustCompile(`(?i)\b(?:` + pattern + `)\b`),
		Category: category,
	}
}

// MatchCategories evaluates every rule in order against the title and returns
// each target category whose pattern matches. No short-circuit: a title may
// land in several categories.
func MatchCategories(rules []Rule, title string) []string {
	var cats []string
	for _, r := range rules {
		if r.Pattern.MatchString(title) {
			cats = append(cats, r.Category)
		}
	}
	return cats
}
