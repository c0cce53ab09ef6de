package suggest

import "github.com/dukerupert/mercado/internal/model"

// table is the built-in autocomplete catalogue, grouped by aisle.
var table = []model.Suggestion{
	// Grains and staples
	{Name: "Arroz Branco", Unit: model.UnitCount},
	{Name: "Arroz Integral", Unit: model.UnitCount},
	{Name: "Arroz Parboilizado", Unit: model.UnitCount},
	{Name: "Feijão Carioca", Unit: model.UnitCount},
	{Name: "Feijão Preto", Unit: model.UnitCount},
	{Name: "Feijão Branco", Unit: model.UnitCount},
	{Name: "Macarrão Espaguete", Unit: model.UnitCount},
	{Name: "Macarrão Fusilli", Unit: model.UnitCount},
	{Name: "Macarrão Penne", Unit: model.UnitCount},
	{Name: "Farinha de Trigo", Unit: model.UnitCount},
	{Name: "Farinha de Milho", Unit: model.UnitCount},
	{Name: "Açúcar Cristal", Unit: model.UnitCount},
	{Name: "Açúcar Refinado", Unit: model.UnitCount},
	{Name: "Açúcar Mascavo", Unit: model.UnitCount},
	{Name: "Sal Refinado", Unit: model.UnitCount},
	{Name: "Sal Grosso", Unit: model.UnitCount},
	{Name: "Café em Pó", Unit: model.UnitCount},
	{Name: "Café em Grão", Unit: model.UnitCount},
	{Name: "Chá", Unit: model.UnitCount},

	// Meat
	{Name: "Frango Inteiro", Unit: model.UnitKilogram},
	{Name: "Peito de Frango", Unit: model.UnitKilogram},
	{Name: "Coxa de Frango", Unit: model.UnitKilogram},
	{Name: "Salsicha", Unit: model.UnitKilogram},
	{Name: "Linguiça Calabresa", Unit: model.UnitKilogram},
	{Name: "Linguiça Toscana", Unit: model.UnitKilogram},
	{Name: "Carne Moída", Unit: model.UnitKilogram},
	{Name: "Alcatra", Unit: model.UnitKilogram},
	{Name: "Patinho", Unit: model.UnitKilogram},
	{Name: "Coxão Mole", Unit: model.UnitKilogram},
	{Name: "Picanha", Unit: model.UnitKilogram},
	{Name: "Filé Mignon", Unit: model.UnitKilogram},
	{Name: "Costela", Unit: model.UnitKilogram},
	{Name: "Acém", Unit: model.UnitKilogram},
	{Name: "Carne de Porco", Unit: model.UnitKilogram},
	{Name: "Carne", Unit: model.UnitKilogram},

	// Fish
	{Name: "Tilápia", Unit: model.UnitKilogram},
	{Name: "Sardinha", Unit: model.UnitKilogram},
	{Name: "Atum em Lata", Unit: model.UnitCount},
	{Name: "Salmão", Unit: model.UnitKilogram},

	// Cold cuts and dairy
	{Name: "Leite Integral", Unit: model.UnitCount},
	{Name: "Leite Desnatado", Unit: model.UnitCount},
	{Name: "Leite Sem Lactose", Unit: model.UnitCount},
	{Name: "Iogurte Natural", Unit: model.UnitCount},
	{Name: "Iogurte Grego", Unit: model.UnitCount},
	{Name: "Queijo Muçarela", Unit: model.UnitKilogram},
	{Name: "Queijo Prato", Unit: model.UnitKilogram},
	{Name: "Queijo Minas", Unit: model.UnitKilogram},
	{Name: "Queijo Parmesão Ralado", Unit: model.UnitCount},
	{Name: "Presunto", Unit: model.UnitKilogram},
	{Name: "Mortadela", Unit: model.UnitKilogram},
	{Name: "Manteiga", Unit: model.UnitCount},
	{Name: "Requeijão Cremoso", Unit: model.UnitCount},
	{Name: "Cream Cheese", Unit: model.UnitCount},

	// Produce
	{Name: "Tomate", Unit: model.UnitKilogram},
	{Name: "Cebola", Unit: model.UnitKilogram},
	{Name: "Alho", Unit: model.UnitKilogram},
	{Name: "Batata", Unit: model.UnitKilogram},
	{Name: "Batata Doce", Unit: model.UnitKilogram},
	{Name: "Cenoura", Unit: model.UnitKilogram},
	{Name: "Abobrinha", Unit: model.UnitKilogram},
	{Name: "Chuchu", Unit: model.UnitKilogram},
	{Name: "Abóbora", Unit: model.UnitKilogram},
	{Name: "Maçã Fuji", Unit: model.UnitKilogram},
	{Name: "Banana Nanica", Unit: model.UnitKilogram},
	{Name: "Banana Prata", Unit: model.UnitKilogram},
	{Name: "Laranja Pera", Unit: model.UnitKilogram},
	{Name: "Limão Taiti", Unit: model.UnitKilogram},
	{Name: "Alface Americana", Unit: model.UnitCount},
	{Name: "Alface Crespa", Unit: model.UnitCount},
	{Name: "Coentro", Unit: model.UnitCount},
	{Name: "Cebolinha", Unit: model.UnitCount},
	{Name: "Salsinha", Unit: model.UnitCount},
	{Name: "Pepino", Unit: model.UnitKilogram},

	// Drinks
	{Name: "Água com Gás", Unit: model.UnitCount},
	{Name: "Refrigerante", Unit: model.UnitCount},
	{Name: "Suco", Unit: model.UnitCount},
	{Name: "Chá Gelado", Unit: model.UnitCount},
	{Name: "Cerveja", Unit: model.UnitCount},
	{Name: "Vinho", Unit: model.UnitCount},
	{Name: "Espumante", Unit: model.UnitCount},
	{Name: "Energetico", Unit: model.UnitCount},
	{Name: "Agua Mineral", Unit: model.UnitCount},
	{Name: "Achocolatado", Unit: model.UnitCount},
	{Name: "Bebida Láctea", Unit: model.UnitCount},

	// Cleaning
	{Name: "Detergente Líquido", Unit: model.UnitCount},
	{Name: "Sabão em Pó", Unit: model.UnitCount},
	{Name: "Sabão em Liquido", Unit: model.UnitCount},
	{Name: "Sabão em Barra", Unit: model.UnitCount},
	{Name: "Desinfetante", Unit: model.UnitCount},
	{Name: "Amaciante", Unit: model.UnitCount},
	{Name: "Água Sanitária", Unit: model.UnitCount},
	{Name: "Esponja de Aço", Unit: model.UnitCount},
	{Name: "Pano Multiuso", Unit: model.UnitCount},
	{Name: "Lixinho Plástico", Unit: model.UnitCount},

	// Personal care
	{Name: "Sabonete ", Unit: model.UnitCount},
	{Name: "Shampoo", Unit: model.UnitCount},
	{Name: "Condicionador", Unit: model.UnitCount},
	{Name: "Pasta de Dente ", Unit: model.UnitCount},
	{Name: "Escova de Dente", Unit: model.UnitCount},
	{Name: "Fio Dental", Unit: model.UnitCount},
	{Name: "Papel Higiênico ", Unit: model.UnitCount},
	{Name: "Papel Toalha", Unit: model.UnitCount},
	{Name: "Desodorante Rexona", Unit: model.UnitCount},
	{Name: "Absorvente", Unit: model.UnitCount},
	{Name: "Enxaguante Bucal", Unit: model.UnitCount},

	// Bakery
	{Name: "Pão Francês", Unit: model.UnitCount},
	{Name: "Pão de Forma", Unit: model.UnitCount},
	{Name: "Pão Integral", Unit: model.UnitCount},
	{Name: "Biscoito Cream Cracker", Unit: model.UnitCount},
	{Name: "Biscoito Maisena", Unit: model.UnitCount},
	{Name: "Bolacha Negresco", Unit: model.UnitCount},
	{Name: "Chocolate Nestlé", Unit: model.UnitCount},
	{Name: "Chocolate ao Leite", Unit: model.UnitCount},

	// Canned goods and sauces
	{Name: "Milho Verde", Unit: model.UnitCount},
	{Name: "Ervilha", Unit: model.UnitCount},
	{Name: "Molho de Tomate", Unit: model.UnitCount},
	{Name: "Extrato de Tomate", Unit: model.UnitCount},
	{Name: "Maionese Hellmann's", Unit: model.UnitCount},
	{Name: "Ketchup", Unit: model.UnitCount},
	{Name: "Mostarda", Unit: model.UnitCount},
	{Name: "Catchup", Unit: model.UnitCount},

	// Eggs
	{Name: "Ovos Brancos", Unit: model.UnitCount},
	{Name: "Ovos Marrons", Unit: model.UnitCount},

	// Soft drinks
	{Name: "Nescau", Unit: model.UnitCount},
	{Name: "Todo Dia", Unit: model.UnitCount},
	{Name: "Mel", Unit: model.UnitCount},

	// Other
	{Name: "Fermento Químico", Unit: model.UnitCount},
	{Name: "Fermento Biológico", Unit: model.UnitCount},
	{Name: "Bicarbonato de Sódio", Unit: model.UnitCount},
	{Name: "Leite em Pó", Unit: model.UnitCount},
}
