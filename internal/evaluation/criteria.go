package evaluation

const professorFraming = `Você é um especialista educacional na criação e curadoria de apostilas para professores do ensino médio do estado do Maranhão. Analise a APOSTILA DO PROFESSOR e avalie-a criteriosamente, usando conceitos de análise e pedagogia, com base nos critérios listados.`

const studentFraming = `Você é um especialista educacional na revisão de apostilas destinadas a estudantes do ensino médio do estado do Maranhão. Analise a APOSTILA DO ESTUDANTE e avalie-a criteriosamente, com base nos critérios listados.`

var professorCatalog = mustCatalog(KindProfessor, professorFraming, []Criterion{
	{
		ID:          0,
		DisplayText: "Validar conformidade com a ementa",
		Variant:     VariantAuto,
		Instruction: `Verifique se a apostila do professor está completamente alinhada com a EMENTA informada no contexto (disciplina, objetivos, conteúdo programático).
Responda a duas perguntas: (1) lendo toda a apostila, o professor consegue trabalhar todos os objetivos da ementa? (2) todos os itens do conteúdo programático aparecem na apostila, com o mesmo nome ou sinônimo claro, em contexto coerente?
"Aprovado" somente se todos os objetivos e todos os itens do conteúdo programático estiverem contemplados de forma adequada. "Reprovado" se pelo menos um estiver ausente, superficial ou desalinhado.
Se reprovado, cite uma ou duas lacunas principais com capítulo/seção quando possível (ex.: "O tópico Y do conteúdo programático não aparece em nenhuma seção").`,
	},
	{
		ID:          2,
		DisplayText: "Verificar se possui a palavra 'Aluno' e substituir por 'Estudante'.",
		Variant:     VariantAuto,
		Instruction: `Procure a palavra 'Aluno' em qualquer forma ('aluno', 'alunos', 'aluna'). Aprove se não houver ocorrências; reprove se encontrar. Se reprovado, mencione um ou dois exemplos com localização (ex.: 'A palavra "Aluno" aparece na introdução do Capítulo 1').`,
	},
	{
		ID:          3,
		DisplayText: "Verificar se é citado o nome do curso e retirar, já que o CC pode ser comum a outros Cursos.",
		Variant:     VariantAuto,
		Instruction: `Verifique se o nome de um curso específico (ex.: 'Engenharia Civil', 'Gastronomia') é mencionado. Como o componente curricular pode ser compartilhado entre cursos, reprove se houver menções específicas; aprove se não houver ou se forem genéricas. Se reprovado, cite um ou dois exemplos com localização.`,
	},
	{
		ID:          5,
		DisplayText: "Verificar se o quadro inicial (Planejamento das aulas) com Conhecimentos e estratégias de ensino está preenchido.",
		Variant:     VariantAuto,
		Instruction: `Tabelas em imagem não são legíveis. Verifique apenas se existe a seção textual 'Planejamento de ensino' ou 'Planejamento das aulas'. Se houver título ou menção, aprove (assuma que a tabela está presente e preenchida). Reprove apenas se não houver nenhuma menção, indicando a ausência.`,
	},
	{
		ID:          6,
		DisplayText: "Verificar se consta no livro os objetivos de aprendizagem.",
		Variant:     VariantAuto,
		Instruction: `Confirme a presença de uma introdução geral com objetivos de aprendizagem explícitos. Aprove se ambos estiverem presentes; reprove se faltar algum, especificando o problema (ex.: 'Introdução presente, mas sem objetivos de aprendizagem').`,
	},
	{
		ID:          7,
		DisplayText: "Verificar a ordem de seções por capítulo: 1 Contextualizando, 1 Conectando, 1 Aprofundando, 1 Praticando, 1 Recapitulando e 1 Exercitando.",
		Variant:     VariantAuto,
		Instruction: `Para CADA capítulo, verifique se as seis seções estão presentes e NA ORDEM: Contextualizando, Conectando, Aprofundando, Praticando, Recapitulando, Exercitando. Reprove se algum capítulo tiver seção faltante, fora de ordem ou com nome incorreto (ex.: 'EXERCÍCIOS' em vez de 'Exercitando'), citando o capítulo afetado.`,
	},
	{
		ID:          8,
		DisplayText: "Verificar se o conteúdo abordado em cada seção didática atende à proposta e à sua função.",
		Variant:     VariantAuto,
		Instruction: `Verifique se o conteúdo de cada seção cumpre sua função (ex.: Contextualizando introduz o contexto, Aprofundando aprofunda conceitos). Reprove se alguma seção não cumprir, citando um exemplo.`,
	},
	{
		ID:          10,
		DisplayText: "Verificar se a linguagem está clara, coerente e com fluxo lógico apresentando os conceitos de forma progressiva.",
		Variant:     VariantAuto,
		Instruction: `Avalie clareza, coerência, fluxo lógico e progressão dos conceitos. Aprove se a linguagem for excelente; reprove se houver falhas, apontando uma ou duas (ex.: 'Fluxo ilógico na transição do Capítulo 2 para o 3').`,
	},
	{
		ID:          13,
		DisplayText: "Verificar se há analogias e exemplos com o cotidiano, para relacionar os conceitos do livro a situações práticas.",
		Variant:     VariantAuto,
		Instruction: `Verifique se os conceitos-chave de cada capítulo são ilustrados por analogias ou exemplos do cotidiano, de preferência relevantes para o Maranhão (agricultura, cultura local, profissões). Reprove se forem escassos ou genéricos, citando um ou dois capítulos afetados.`,
	},
	{
		ID:          14,
		DisplayText: "Verificar se há indicações de discussões e interações propostas, como dinâmicas, perguntas norteadoras ou debates para facilitar o trabalho do professor.",
		Variant:     VariantAuto,
		Instruction: `Busque propostas de interação pedagógica: dinâmicas de grupo, perguntas norteadoras, sugestões de debate. Aprove se houver indicações claras e suficientes; reprove se ausentes, citando um exemplo (ex.: 'Nenhuma sugestão de dinâmica no Capítulo 3').`,
	},
	{
		ID:          15,
		DisplayText: "Verificar se há gabarito comentado e justificativa das respostas corretas e incorretas nas questões dos exercícios.",
		Variant:     VariantAuto,
		Instruction: `Nas seções 'Exercitando', verifique se cada questão objetiva tem gabarito e explicação da resposta correta e, quando aplicável, das incorretas. Reprove se faltar gabarito ou comentário, citando uma ou duas questões.`,
	},
	{
		ID:          17,
		DisplayText: "Verificar se há indicação de Atividades extras e Bibliografia complementar para o professor.",
		Variant:     VariantAuto,
		Instruction: `Busque seções como 'Atividades Extras', 'Sugestões de Atividades' ou 'Bibliografia Complementar' destinadas ao professor. Aprove se houver indicações claras; reprove se ausentes ou insuficientes.`,
	},
	{
		ID:          18,
		DisplayText: "Verificar referências bibliográficas no final do livro.",
		Variant:     VariantAuto,
		Instruction: `Localize a seção de referências no final da apostila e avalie formato e cobertura. Reprove se ausente ou incompleta, indicando o problema (ex.: 'Referências ausentes para fontes citadas no Capítulo 2').`,
	},
	{
		ID:          19,
		DisplayText: "Verificar se há as Marcações de Capítulos, Seções e SubTags (#) nos livros.",
		Variant:     VariantAuto,
		Instruction: `Toda tag deve começar e terminar com '#', sem espaços entre o símbolo e a palavra (ex.: #SAIBAMAIS#). Reprove APENAS se encontrar tags mal formatadas (ex.: '#SAIBAMAIS' ou 'DICAS#'). A ausência de tags não é motivo de reprovação. Tags esperadas: #SAIBAMAIS#, #SAIBA MAIS#, #CURIOSIDADE#, #DICAS#, #FIQUEATENTO#, #FIQUE ATENTO#, #ATENCAO#, #ATENÇÃO#, #AQUINOMARANHAO#, #AQUINOMARANHÃO#, #AQUI NO MARANHAO#, #FIQUELIGADO#, #FIQUE LIGADO#, #DESTAQUE#, #QUADRO#, #CITACAO#, #TOOLTIP#, #TOOLTIPTITULO#, #Capítulo#, #CAPITULO#, #FONTE#, #QUEBRADEPAGINA#, #TITULO2#, #TITULO3#, #TITULOTABELA#.`,
	},
})

var studentCatalog = mustCatalog(KindStudent, studentFraming, []Criterion{
	{
		ID:          1,
		DisplayText: "Verificar se possui a palavra 'Aluno' e substituir por 'Estudante'.",
		Variant:     VariantAuto,
		Instruction: `Procure a palavra 'Aluno' em qualquer forma. Aprove se não houver ocorrências; reprove se encontrar, citando um ou dois exemplos com localização.`,
	},
	{
		ID:          2,
		DisplayText: "Verificar se consta no livro os objetivos de aprendizagem.",
		Variant:     VariantAuto,
		Instruction: `Confirme que a apostila apresenta objetivos de aprendizagem explícitos na introdução ou na abertura de cada capítulo. Reprove se ausentes, indicando onde deveriam aparecer.`,
	},
	{
		ID:          3,
		DisplayText: "Verificar a ordem de seções por capítulo: Contextualizando, Conectando, Aprofundando, Praticando, Recapitulando e Exercitando.",
		Variant:     VariantAuto,
		Instruction: `Para cada capítulo, verifique se as seções Contextualizando, Conectando, Aprofundando, Praticando, Recapitulando e Exercitando estão presentes e nessa ordem. Reprove citando o capítulo com seção faltante ou fora de ordem.`,
	},
	{
		ID:          4,
		DisplayText: "Verificar se a linguagem é adequada ao estudante do ensino médio.",
		Variant:     VariantAuto,
		Instruction: `Avalie se a linguagem é clara, acessível e formal o suficiente para estudantes do ensino médio, sem gírias ou expressões coloquiais (ex.: "né?", "tipo assim"). Reprove citando uma ou duas expressões inadequadas entre aspas.`,
	},
	{
		ID:          5,
		DisplayText: "Verificar se não há gabarito das questões na versão do estudante.",
		Variant:     VariantAuto,
		Instruction: `A versão do estudante não deve conter gabaritos ou respostas comentadas dos exercícios. Reprove se encontrar gabarito, citando a questão e o capítulo.`,
	},
	{
		ID:          6,
		DisplayText: "Verificar se as imagens possuem legenda e fonte.",
		Variant:     VariantManual,
	},
	{
		ID:          7,
		DisplayText: "Verificar a diagramação e a legibilidade das tabelas.",
		Variant:     VariantManual,
	},
	{
		ID:          8,
		DisplayText: "Verificar referências bibliográficas no final do livro.",
		Variant:     VariantAuto,
		Instruction: `Localize a seção de referências no final da apostila. Reprove se ausente ou incompleta, indicando o problema.`,
	},
})
