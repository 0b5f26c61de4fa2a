// Package validate defines the boundary to the network-specific address
// validator. The library never checks address syntax itself; it accepts an
// injected Validator and works with the Principal values it produces.
package validate
