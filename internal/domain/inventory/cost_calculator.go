package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost costo promedio ponderado tras una entrada de stock.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func WeightedAverageCost(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}

// AverageUnitPrice precio medio por litro de una serie de entradas (cantidad, precio unitario).
func AverageUnitPrice(quantities, prices []decimal.Decimal) decimal.Decimal {
	stock, cost := decimal.Zero, decimal.Zero
	for i := range quantities {
		if i >= len(prices) || !quantities[i].IsPositive() {
			continue
		}
		cost = WeightedAverageCost(stock, cost, quantities[i], prices[i])
		stock = stock.Add(quantities[i])
	}
	return cost.Round(2)
}
