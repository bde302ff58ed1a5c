// Package services holds domain logic that spans more than one aggregate:
//   - PricingCalculator prices order lines against the menu catalog
//   - ReferralCodeGenerator issues referral code candidates for new users
//   - DefaultAddressPolicy chooses the default and delivery addresses of a user
package services
