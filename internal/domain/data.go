package domain

import "time"

// Built-in reference data. The storefront ships its catalog; nothing here is
// mutated at runtime, callers receive copies.

var categories = []Category{
	{ID: "all", Name: "Всі букети", Icon: "💐"},
	{ID: "roses", Name: "Троянди", Icon: "🌹"},
	{ID: "peonies", Name: "Півонії", Icon: "🌸"},
	{ID: "wedding", Name: "Весільні", Icon: "👰"},
	{ID: "exotic", Name: "Екзотичні", Icon: "🌺"},
	{ID: "seasonal", Name: "Сезонні", Icon: "🍂"},
}

var bouquets = []Bouquet{
	{
		ID:          "1",
		Name:        "Романтичний вечір",
		Price:       1250,
		Image:       "/assets/bouquet-romantic.jpg",
		Category:    "roses",
		Description: "Ніжний букет з червоних троянд та еустоми для особливого вечора",
		Flowers:     []string{"Троянда червона", "Еустома", "Евкаліпт"},
		IsNew:       true,
		Rating:      4.9,
	},
	{
		ID:            "2",
		Name:          "Сонячний настрій",
		Price:         850,
		OriginalPrice: 990,
		Image:         "/assets/bouquet-sunny.jpg",
		Category:      "seasonal",
		Description:   "Яскравий мікс соняшників і хризантем, що дарує посмішку",
		Flowers:       []string{"Соняшник", "Хризантема", "Солідаго"},
		IsSale:        true,
		Rating:        4.7,
	},
	{
		ID:          "3",
		Name:        "Преміум колекція",
		Price:       2800,
		Image:       "/assets/bouquet-premium.jpg",
		Category:    "roses",
		Description: "Розкішні піоновидні троянди Девіда Остіна у стильному оформленні",
		Flowers:     []string{"Троянда Остіна", "Ранункулюс", "Гортензія"},
		Rating:      5,
	},
	{
		ID:          "4",
		Name:        "Польова рапсодія",
		Price:       690,
		Image:       "/assets/bouquet-rustic.jpg",
		Category:    "seasonal",
		Description: "Букет у рустикальному стилі з польових квітів і злаків",
		Flowers:     []string{"Ромашка", "Лаванда", "Пшениця"},
		Rating:      4.5,
	},
	{
		ID:          "5",
		Name:        "Півонієва ніжність",
		Price:       1650,
		Image:       "/assets/bouquet-peony.jpg",
		Category:    "peonies",
		Description: "Пишні рожеві півонії — символ ніжності та кохання",
		Flowers:     []string{"Півонія рожева", "Півонія біла", "Зелень"},
		IsNew:       true,
		Rating:      4.8,
	},
	{
		ID:          "6",
		Name:        "Тропічний рай",
		Price:       1950,
		Image:       "/assets/bouquet-tropical.jpg",
		Category:    "exotic",
		Description: "Екзотична композиція зі стреліцій та орхідей",
		Flowers:     []string{"Стреліція", "Орхідея", "Антуріум", "Монстера"},
		Rating:      4.6,
	},
	{
		ID:          "7",
		Name:        "Весільна мрія",
		Price:       2400,
		Image:       "/assets/bouquet-wedding.jpg",
		Category:    "wedding",
		Description: "Класичний білий букет нареченої з трояндами та фрезією",
		Flowers:     []string{"Троянда біла", "Фрезія", "Гіпсофіла"},
		Rating:      4.9,
	},
	{
		ID:            "8",
		Name:          "Осіння соната",
		Price:         780,
		OriginalPrice: 920,
		Image:         "/assets/bouquet-autumn.jpg",
		Category:      "seasonal",
		Description:   "Теплі осінні барви: жоржини, айстри та фізаліс",
		Flowers:       []string{"Жоржина", "Айстра", "Фізаліс"},
		IsSale:        true,
		Rating:        4.4,
	},
}

var customFlowers = []CustomFlower{
	{ID: "f1", Name: "Троянда", Color: "Червона", Price: 85, Image: "/assets/flower-rose-red.jpg"},
	{ID: "f2", Name: "Троянда", Color: "Біла", Price: 80, Image: "/assets/flower-rose-white.jpg"},
	{ID: "f3", Name: "Півонія", Color: "Рожева", Price: 120, Image: "/assets/flower-peony.jpg"},
	{ID: "f4", Name: "Тюльпан", Color: "Жовтий", Price: 45, Image: "/assets/flower-tulip.jpg"},
	{ID: "f5", Name: "Орхідея", Color: "Фіолетова", Price: 150, Image: "/assets/flower-orchid.jpg"},
	{ID: "f6", Name: "Лілія", Color: "Біла", Price: 95, Image: "/assets/flower-lily.jpg"},
	{ID: "f7", Name: "Хризантема", Color: "Бузкова", Price: 55, Image: "/assets/flower-chrysanthemum.jpg"},
	{ID: "f8", Name: "Евкаліпт", Color: "Зелений", Price: 35, Image: "/assets/flower-eucalyptus.jpg"},
}

var promotions = []Promotion{
	{
		ID:          "p1",
		Title:       "Весняний розпродаж",
		Description: "Знижка 20% на всі букети за промокодом",
		Discount:    20,
		Image:       "/assets/promo-spring.jpg",
		ValidUntil:  time.Date(2026, time.May, 31, 23, 59, 0, 0, time.UTC),
		Code:        "SPRING20",
	},
	{
		ID:          "p2",
		Title:       "Для закоханих",
		Description: "15% знижки на романтичні композиції",
		Discount:    15,
		Image:       "/assets/promo-love.jpg",
		ValidUntil:  time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC),
		Code:        "LOVE15",
	},
	{
		ID:          "p3",
		Title:       "Безкоштовна доставка",
		Description: "Доставка безкоштовна для замовлень від 2000 ₴",
		Discount:    0,
		Image:       "/assets/promo-delivery.jpg",
		ValidUntil:  time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC),
		Code:        "",
	},
}

// Bouquets returns a copy of the catalog in its natural order.
func Bouquets() []Bouquet {
	out := make([]Bouquet, len(bouquets))
	copy(out, bouquets)
	return out
}

// Categories returns the fixed category set, "all" first.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CustomFlowers returns a fresh variant list with all quantities at zero.
func CustomFlowers() []CustomFlower {
	out := make([]CustomFlower, len(customFlowers))
	copy(out, customFlowers)
	return out
}

// Promotions returns the current promotion set.
func Promotions() []Promotion {
	out := make([]Promotion, len(promotions))
	copy(out, promotions)
	return out
}
