// Package dfc monta o Demonstrativo de Fluxo de Caixa a partir das linhas
// planas da fonte de dados: agrupa por código de linha, organiza a tabela
// com o total geral fixo e projeta as séries dos gráficos.
//
// Todas as funções são puras. Chamar o pipeline duas vezes com a mesma
// entrada produz a mesma saída.
package dfc
