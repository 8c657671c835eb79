package refdata

import "context"

var brazilStates = []State{
	{UF: "AC", Name: "Acre"},
	{UF: "AL", Name: "Alagoas"},
	{UF: "AP", Name: "Amapá"},
	{UF: "AM", Name: "Amazonas"},
	{UF: "BA", Name: "Bahia"},
	{UF: "CE", Name: "Ceará"},
	{UF: "DF", Name: "Distrito Federal"},
	{UF: "ES", Name: "Espírito Santo"},
	{UF: "GO", Name: "Goiás"},
	{UF: "MA", Name: "Maranhão"},
	{UF: "MT", Name: "Mato Grosso"},
	{UF: "MS", Name: "Mato Grosso do Sul"},
	{UF: "MG", Name: "Minas Gerais"},
	{UF: "PA", Name: "Pará"},
	{UF: "PB", Name: "Paraíba"},
	{UF: "PR", Name: "Paraná"},
	{UF: "PE", Name: "Pernambuco"},
	{UF: "PI", Name: "Piauí"},
	{UF: "RJ", Name: "Rio de Janeiro"},
	{UF: "RN", Name: "Rio Grande do Norte"},
	{UF: "RS", Name: "Rio Grande do Sul"},
	{UF: "RO", Name: "Rondônia"},
	{UF: "RR", Name: "Roraima"},
	{UF: "SC", Name: "Santa Catarina"},
	{UF: "SP", Name: "São Paulo"},
	{UF: "SE", Name: "Sergipe"},
	{UF: "TO", Name: "Tocantins"},
}

var vehicleTypeGroups = []TypeGroup{
	{Group: "leve", Types: []string{"vlc", "3/4", "toco"}},
	{Group: "medio", Types: []string{"truck", "bitruck"}},
	{Group: "pesado", Types: []string{"carreta", "carreta_ls", "rodotrem", "bitrem"}},
}

var bodyTypeGroups = []TypeGroup{
	{Group: "fechada", Types: []string{"bau", "bau_frigorifico", "sider"}},
	{Group: "aberta", Types: []string{"grade_baixa", "graneleiro", "plataforma", "cacamba"}},
	{Group: "especial", Types: []string{"cegonheiro", "tanque", "munck", "porta_container"}},
}

// StaticSource serves a bundled municipality sample per state. Production
// deployments can swap in a source backed by the IBGE localities API.
type StaticSource struct{}

func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

func (s *StaticSource) Cities(_ context.Context, uf string) ([]string, error) {
	cities, ok := staticCities[uf]
	if !ok {
		// Every valid UF resolves; states without a bundled sample expose
		// only the capital.
		return []string{capitals[uf]}, nil
	}
	out := make([]string, len(cities))
	copy(out, cities)
	return out, nil
}

var capitals = map[string]string{
	"AC": "Rio Branco", "AL": "Maceió", "AP": "Macapá", "AM": "Manaus",
	"BA": "Salvador", "CE": "Fortaleza", "DF": "Brasília", "ES": "Vitória",
	"GO": "Goiânia", "MA": "São Luís", "MT": "Cuiabá", "MS": "Campo Grande",
	"MG": "Belo Horizonte", "PA": "Belém", "PB": "João Pessoa", "PR": "Curitiba",
	"PE": "Recife", "PI": "Teresina", "RJ": "Rio de Janeiro", "RN": "Natal",
	"RS": "Porto Alegre", "RO": "Porto Velho", "RR": "Boa Vista",
	"SC": "Florianópolis", "SP": "São Paulo", "SE": "Aracaju", "TO": "Palmas",
}

var staticCities = map[string][]string{
	"SP": {"São Paulo", "Campinas", "Santos", "Ribeirão Preto", "Sorocaba", "São José dos Campos", "Bauru"},
	"RJ": {"Rio de Janeiro", "Niterói", "Duque de Caxias", "Campos dos Goytacazes", "Volta Redonda"},
	"MG": {"Belo Horizonte", "Uberlândia", "Contagem", "Juiz de Fora", "Uberaba", "Betim"},
	"PR": {"Curitiba", "Londrina", "Maringá", "Ponta Grossa", "Cascavel", "Foz do Iguaçu"},
	"RS": {"Porto Alegre", "Caxias do Sul", "Pelotas", "Canoas", "Santa Maria"},
	"SC": {"Florianópolis", "Joinville", "Blumenau", "Chapecó", "Itajaí"},
	"BA": {"Salvador", "Feira de Santana", "Vitória da Conquista", "Camaçari"},
	"GO": {"Goiânia", "Aparecida de Goiânia", "Anápolis", "Rio Verde"},
	"PE": {"Recife", "Jaboatão dos Guararapes", "Olinda", "Caruaru", "Petrolina"},
	"CE": {"Fortaleza", "Caucaia", "Juazeiro do Norte", "Sobral"},
}
